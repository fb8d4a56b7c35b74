package catalog

import "fmt"

func posterURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/cinematv-%s-poster/300/450", id)
}

func backdropURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/cinematv-%s-backdrop/1280/720", id)
}

func record(id, title, synopsis, category string, year int, rating float64) MediaRecord {
	return MediaRecord{
		ID:       id,
		Title:    title,
		Synopsis: synopsis,
		Category: category,
		Year:     year,
		Rating:   rating,
		Poster:   ImageRef{URL: posterURL(id), Placeholder: PlaceholderPoster},
		Backdrop: ImageRef{URL: backdropURL(id), Placeholder: PlaceholderBackdrop},
	}
}

var (
	eclipseProtocol = record("a1", "Eclipse Protocol",
		"A covert agent must stop a rogue satellite before it blinds the world.",
		"Action", 2023, 4.2)
	crimsonHorizon = record("a2", "Crimson Horizon",
		"A rescue team ventures beyond the crimson clouds to save a lost pilot.",
		"Action", 2022, 4.0)
	quietRoads = record("d1", "Quiet Roads",
		"A heartfelt journey through grief, hope, and new beginnings.",
		"Drama", 2024, 4.7)
	lettersToTheSea = record("d2", "Letters to the Sea",
		"A coastal town reconnects through messages found in drifting bottles.",
		"Drama", 2021, 4.3)
	interstellar = record("i1", "Interstellar",
		"Explorers travel through a wormhole in search of a new home for humanity.",
		"Sci-Fi", 2014, 4.8)
	starlitEchoes = record("s1", "Starlit Echoes",
		"Two explorers chase a repeating signal from the edge of known space.",
		"Sci-Fi", 2020, 4.1)
	arcadia9 = record("s2", "Arcadia-9",
		"On a terraformed world, a mystery threatens the colony's fragile peace.",
		"Sci-Fi", 2024, 4.6)
	orbitalDrift = record("s3", "Orbital Drift",
		"A stranded engineer rebuilds a station one module at a time.",
		"Sci-Fi", 2019, 3.9)
	hollowPines = record("h1", "Hollow Pines",
		"Campers discover the forest remembers every name spoken in it.",
		"Horror", 2022, 3.8)
	theLastLantern = record("h2", "The Last Lantern",
		"A lighthouse keeper refuses to let the light go out, whatever knocks.",
		"Horror", 2023, 4.0)
	basementTapes = record("h3", "Basement Tapes",
		"Old home videos show a family that never lived in the house.",
		"Horror", 2021, 3.6)
	paperKites = record("c1", "Paper Kites",
		"Siblings build a kite big enough to carry a wish across the valley.",
		"Child", 2023, 4.4)
	moonbeamMeadow = record("c2", "Moonbeam Meadow",
		"A shy hedgehog learns to lead the night parade.",
		"Child", 2020, 4.2)
	captainCardboard = record("c3", "Captain Cardboard",
		"A boy and his cardboard spaceship rescue the neighborhood cat.",
		"Child", 2024, 4.5)
	springInLisbon = record("r1", "Spring in Lisbon",
		"Two strangers keep missing each other on the same tram line.",
		"Romantic", 2022, 4.1)
	secondDraft = record("r2", "Second Draft",
		"A novelist rewrites her love story while living it.",
		"Romantic", 2023, 4.3)
	afterTheRain = record("r3", "After the Rain",
		"A florist and a storm chaser plan a wedding in tornado season.",
		"Romantic", 2021, 3.9)
	coldLedger = record("t1", "Cold Ledger",
		"An accountant finds a column of numbers that predicts murders.",
		"Thriller", 2024, 4.4)
	nightShift = record("t2", "Night Shift",
		"A hospital orderly notices patients vanishing between rounds.",
		"Thriller", 2022, 4.0)
	glassCity = record("t3", "Glass City",
		"A negotiator races the clock inside a skyscraper with no exits.",
		"Thriller", 2023, 4.2)
)

var sampleBanners = []string{
	"https://picsum.photos/seed/cinematv-banner-1/1920/720",
	"https://picsum.photos/seed/cinematv-banner-2/1920/720",
	"https://picsum.photos/seed/cinematv-banner-3/1920/720",
}

// Sample returns the catalog bundled with the application.
func Sample() *Catalog {
	return New([]Category{
		{Name: "Recommended", Items: []MediaRecord{interstellar, eclipseProtocol, quietRoads, arcadia9, coldLedger}},
		{Name: "Top Picks", Items: []MediaRecord{quietRoads, arcadia9, crimsonHorizon, secondDraft, theLastLantern}},
		{Name: "Recently Added", Items: []MediaRecord{captainCardboard, coldLedger, lettersToTheSea, orbitalDrift}},
		{Name: "Sci-Fi", Items: []MediaRecord{interstellar, starlitEchoes, arcadia9, orbitalDrift}},
		{Name: "Horror", Items: []MediaRecord{hollowPines, theLastLantern, basementTapes}},
		{Name: "Child", Items: []MediaRecord{paperKites, moonbeamMeadow, captainCardboard}},
		{Name: "Romantic", Items: []MediaRecord{springInLisbon, secondDraft, afterTheRain}},
		{Name: "Thriller", Items: []MediaRecord{coldLedger, nightShift, glassCity, eclipseProtocol}},
	}, sampleBanners)
}
