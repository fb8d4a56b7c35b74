package browse

import (
	"fmt"
	"math"
	"time"

	"github.com/depeter/cinematv/internal/anim"
	"github.com/depeter/cinematv/internal/catalog"
)

const frame = 10 * time.Millisecond

type ticker interface{ Tick(time.Duration) }

// advance runs the scheduler and the models frame by frame, the way the UI
// update loop does.
func advance(s *anim.Scheduler, d time.Duration, models ...ticker) {
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		s.Tick(step)
		for _, m := range models {
			m.Tick(step)
		}
		d -= step
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func records(prefix string, n int) []catalog.MediaRecord {
	out := make([]catalog.MediaRecord, n)
	for i := range out {
		out[i] = catalog.MediaRecord{
			ID:       fmt.Sprintf("%s%d", prefix, i),
			Title:    fmt.Sprintf("%s title %d", prefix, i),
			Synopsis: "synopsis",
			Category: "Test",
			Year:     2020,
			Rating:   3.5,
			Poster:   catalog.ImageRef{Placeholder: catalog.PlaceholderPoster},
			Backdrop: catalog.ImageRef{Placeholder: catalog.PlaceholderBackdrop},
		}
	}
	return out
}
