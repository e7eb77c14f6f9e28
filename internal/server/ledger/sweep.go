package ledger

import "github.com/dmitrijs2005/satstream/internal/server/models"

// SweepResult tells what one sweep did.
type SweepResult struct {
	Advanced  int
	Completed []uint64
	Released  uint64
}

// Accrue advances one stream to now and returns the amount released.
// Non-active streams and streams already swept at or after now are left
// untouched. All arithmetic saturates.
func Accrue(s *models.Stream, now uint64) uint64 {
	if s.Status != models.StreamActive {
		return 0
	}

	elapsed := models.SatSub(now, s.LastReleaseTime)
	if elapsed == 0 {
		return 0
	}

	releasable := models.SatMul(elapsed, s.SatsPerSec)
	toRelease := min(releasable, s.Unused())

	s.TotalReleased += toRelease
	s.Buffer += toRelease
	s.LastReleaseTime = now

	if s.TotalReleased >= s.TotalLocked || now >= s.EndTime {
		s.Status = models.StreamCompleted
	}

	return toRelease
}

// Sweep accrues every active stream up to now. It never fails. Calling it
// twice with the same now is the same as calling it once; callers must pass
// a non-decreasing now.
func (l *Ledger) Sweep(now uint64) SweepResult {
	var res SweepResult
	for id, s := range l.streams {
		if s.Status != models.StreamActive || now <= s.LastReleaseTime {
			continue
		}
		res.Advanced++
		res.Released = models.SatAdd(res.Released, Accrue(s, now))
		if s.Status == models.StreamCompleted {
			res.Completed = append(res.Completed, id)
		}
	}
	return res
}
