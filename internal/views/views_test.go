package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tracker_Revalidate(t *testing.T) {
	// given
	tracker := NewTracker()

	// when
	tracker.Revalidate(Home, Shop)
	tracker.Revalidate(Home)

	// then
	versions := tracker.Versions()
	assert.Equal(t, uint64(2), versions[Home])
	assert.Equal(t, uint64(1), versions[Shop])
	assert.Equal(t, uint64(0), versions[AdminDashboard])
}

func Test_Tracker_VersionsReturnsCopy(t *testing.T) {
	// given
	tracker := NewTracker()

	// when
	versions := tracker.Versions()
	versions[Home] = 99

	// then
	assert.Equal(t, uint64(0), tracker.Versions()[Home])
}
