package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePosting struct {
	status Status
	bound  time.Time
	hasSet bool
}

func (f fakePosting) CurrentStatus() Status { return f.status }
func (f fakePosting) TimeBound() (time.Time, bool) {
	return f.bound, f.hasSet
}

func TestShouldExpire(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		posting fakePosting
		want    bool
	}{
		{
			name:    "active past bound expires",
			posting: fakePosting{status: StatusActive, bound: now.Add(-time.Hour), hasSet: true},
			want:    true,
		},
		{
			name:    "active before bound stays",
			posting: fakePosting{status: StatusActive, bound: now.Add(time.Hour), hasSet: true},
			want:    false,
		},
		{
			name:    "no bound never expires",
			posting: fakePosting{status: StatusActive},
			want:    false,
		},
		{
			name:    "closed is terminal",
			posting: fakePosting{status: StatusClosed, bound: now.Add(-time.Hour), hasSet: true},
			want:    false,
		},
		{
			name:    "completed is terminal",
			posting: fakePosting{status: StatusCompleted, bound: now.Add(-time.Hour), hasSet: true},
			want:    false,
		},
		{
			name:    "already expired is a no-op",
			posting: fakePosting{status: StatusExpired, bound: now.Add(-time.Hour), hasSet: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldExpire(tt.posting, now))
		})
	}
}

func TestProjectRulesInteraction(t *testing.T) {
	assert.True(t, ProjectRules.CanInteract(StatusActive))
	// completed projects still accept likes, comments and interest
	assert.True(t, ProjectRules.CanInteract(StatusCompleted))
	assert.False(t, ProjectRules.CanInteract(StatusExpired))
}

func TestJobRulesHaveNoInteractions(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusClosed, StatusExpired} {
		assert.False(t, JobRules.CanInteract(s))
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, JobRules.IsTerminal(StatusClosed))
	assert.True(t, JobRules.IsTerminal(StatusExpired))
	assert.False(t, JobRules.IsTerminal(StatusActive))

	assert.True(t, ProjectRules.IsTerminal(StatusExpired))
	// completed is not terminal: the author may reactivate the project
	assert.False(t, ProjectRules.IsTerminal(StatusCompleted))
	assert.False(t, ProjectRules.IsTerminal(StatusActive))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, JobRules.ValidStatus(StatusClosed))
	assert.False(t, JobRules.ValidStatus(StatusCompleted))
	assert.True(t, ProjectRules.ValidStatus(StatusCompleted))
	assert.False(t, ProjectRules.ValidStatus(StatusClosed))
}
