package lifecycle

import (
	"testing"

	"depannel_dispatch/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestSummarize_GroupsPendingAndRefused(t *testing.T) {
	list := []entities.Intervention{
		iv(entities.StatusPending, "", ""),
		iv(entities.StatusRefused, "", ""),
		iv(entities.StatusAssigned, "", "7"),
		iv(entities.StatusAccepted, entities.SubStatusEnRoute, "7"),
		iv(entities.StatusInProgress, "", "8"),
		iv(entities.StatusCompleted, "", "7"),
		iv(entities.StatusClosed, "", "8"),
		iv("bogus", "", ""),
	}

	require.Equal(t, Summary{Pool: 2, Assigned: 1, Active: 2, Completed: 1, Closed: 1, Total: 7}, Summarize(list))
	require.Equal(t, AgentTabs{ToAccept: 1, InProgress: 1, Done: 1}, SummarizeForAgent(list, "7"))
	require.Equal(t, AgentTabs{}, SummarizeForAgent(list, ""))
}

func TestGroupOf(t *testing.T) {
	require.Equal(t, GroupPool, GroupOf(entities.StatusRefused))
	require.Equal(t, GroupOf(entities.StatusPending), GroupOf(entities.StatusRefused))
	require.Equal(t, GroupActive, GroupOf(entities.StatusInProgress))

	g, ok := ParseGroup("active")
	require.True(t, ok)
	require.Equal(t, GroupActive, g)
	_, ok = ParseGroup("nope")
	require.False(t, ok)
}
