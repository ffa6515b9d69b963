package updatebook_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/updatebook"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
)

func currentDune() updatebook.State {
	return updatebook.State{
		ActorIsAdmin:    true,
		BookExists:      true,
		CurrentTitle:    "Dune",
		CurrentAuthor:   "Frank Herbert",
		CurrentQuantity: 2,
	}
}

func Test_Decide_UpdatesFields(t *testing.T) {
	// arrange
	bookID := uuid.New()
	command := updatebook.BuildCommand(uuid.New(), bookID, "Dune Messiah", "Frank Herbert", 4, FixtureClock())

	// act
	result := updatebook.Decide(currentDune(), command)

	// assert
	require.Len(t, result.Events, 1)

	event, ok := result.Events[0].(core.BookUpdated)
	require.True(t, ok, "Should be BookUpdated")
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, "Dune Messiah", event.Title)
	assert.Equal(t, 4, event.Quantity)
}

func Test_Decide_UnchangedValuesAreIdempotent(t *testing.T) {
	// arrange
	command := updatebook.BuildCommand(uuid.New(), uuid.New(), "Dune ", "Frank Herbert", 2, FixtureClock())

	// act
	result := updatebook.Decide(currentDune(), command)

	// assert
	assert.True(t, result.IsIdempotent())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Rejections(t *testing.T) {
	notAdmin := currentDune()
	notAdmin.ActorIsAdmin = false

	missing := currentDune()
	missing.BookExists = false

	taken := currentDune()
	taken.TitleAndAuthorTakenByOther = true

	testCases := []struct {
		name     string
		state    updatebook.State
		title    string
		quantity int
		kind     core.Kind
	}{
		{"not an admin", notAdmin, "Dune", 3, core.KindForbidden},
		{"book absent", missing, "Dune", 3, core.KindNotFound},
		{"blank title", currentDune(), " ", 3, core.KindInvalid},
		{"negative quantity", currentDune(), "Dune", -1, core.KindInvalid},
		{"quantity above maximum", currentDune(), "Dune", core.MaxBookQuantity + 1, core.KindInvalid},
		{"title and author taken", taken, "Children of Dune", 2, core.KindConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := updatebook.BuildCommand(uuid.New(), uuid.New(), tc.title, "Frank Herbert", tc.quantity, FixtureClock())

			// act
			result := updatebook.Decide(tc.state, command)

			// assert
			assert.Equal(t, tc.kind, core.KindOf(result.HasError()))
		})
	}
}
