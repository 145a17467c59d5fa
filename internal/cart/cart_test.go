package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margherita() LineItem {
	return LineItem{ID: "margherita", Name: "Margherita", UnitPrice: decimal.RequireFromString("12.99")}
}

func pepperoni() LineItem {
	return LineItem{ID: "pepperoni", Name: "Pepperoni", UnitPrice: decimal.RequireFromString("14.99")}
}

func TestAddSameIDMergesIntoOneLine(t *testing.T) {
	c := New()
	c.Add(margherita())
	c.Add(margherita())

	require.Equal(t, 1, c.Len())
	line, ok := c.Line("margherita")
	require.True(t, ok)
	assert.Equal(t, int32(2), line.Quantity)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("25.98")), "total = %s", c.Total())
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	c.Add(margherita())
	c.Add(pepperoni())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("27.98")))

	c.SetQuantity("pepperoni", 3)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("57.96")))

	c.Remove("margherita")
	assert.True(t, c.Total().Equal(decimal.RequireFromString("44.97")))
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(margherita())
	c.Add(pepperoni())

	c.SetQuantity("margherita", 0)

	require.Equal(t, 1, c.Len())
	_, ok := c.Line("margherita")
	assert.False(t, ok)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("14.99")))
}

func TestMissingIDOperationsAreNoOps(t *testing.T) {
	c := New()
	c.Add(margherita())

	c.Remove("hawaiian")
	c.SetQuantity("hawaiian", 5)

	require.Equal(t, 1, c.Len())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("12.99")))
}

func TestLinesKeepInsertionOrderAndAreCopies(t *testing.T) {
	c := New()
	c.Add(pepperoni())
	c.Add(margherita())

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "pepperoni", lines[0].ID)
	assert.Equal(t, "margherita", lines[1].ID)

	lines[0].Quantity = 99
	got, _ := c.Line("pepperoni")
	assert.Equal(t, int32(1), got.Quantity)
}
