package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factorysim-go/pkg/utils"
)

var orderIDPattern = regexp.MustCompile(`^order-widget-[0-9a-f]{8}$`)

func TestGenerateOrderID_Format(t *testing.T) {
	id := utils.GenerateOrderID("widget")

	assert.Regexp(t, orderIDPattern, id)
}

func TestGenerateOrderID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.GenerateOrderID("widget")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateOrderID_EmptyProduct(t *testing.T) {
	assert.Regexp(t, `^order-unknown-[0-9a-f]{8}$`, utils.GenerateOrderID(""))
}
