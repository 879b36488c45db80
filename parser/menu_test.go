package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuCategoriesWithIcons(t *testing.T) {
	text := "⭐ STAR: Koshari Bowl, Chicken Shawarma\n🐕 DOG: Lentil Soup and Greek Salad"
	r := ParseResponse(text)

	if !assert.Len(t, r.MenuEngineering, 2) {
		return
	}
	assert.Equal(t, "STAR", r.MenuEngineering[0].Category)
	assert.Equal(t, []string{"Koshari Bowl", "Chicken Shawarma"}, r.MenuEngineering[0].Items)
	assert.Equal(t, "DOG", r.MenuEngineering[1].Category)
	assert.Equal(t, []string{"Lentil Soup", "Greek Salad"}, r.MenuEngineering[1].Items)
}

func TestMenuSameCategoryAccumulates(t *testing.T) {
	text := "STAR: Koshari Bowl\nSTAR: Chicken Shawarma, Falafel Wrap"
	r := ParseResponse(text)

	if !assert.Len(t, r.MenuEngineering, 1) {
		return
	}
	assert.Equal(t, "STAR", r.MenuEngineering[0].Category)
	assert.Equal(t, []string{"Koshari Bowl", "Chicken Shawarma", "Falafel Wrap"}, r.MenuEngineering[0].Items)
}

func TestMenuCaseInsensitiveWithQualifier(t *testing.T) {
	text := "🧩 Puzzle items to promote: Feteer Meshaltet"
	r := ParseResponse(text)

	if !assert.Len(t, r.MenuEngineering, 1) {
		return
	}
	assert.Equal(t, "PUZZLE", r.MenuEngineering[0].Category)
	assert.Equal(t, []string{"Feteer Meshaltet"}, r.MenuEngineering[0].Items)
}

func TestMenuPlowhorseBulleted(t *testing.T) {
	text := "- PLOWHORSE: Molokhia, Fattah"
	r := ParseResponse(text)

	if !assert.Len(t, r.MenuEngineering, 1) {
		return
	}
	assert.Equal(t, "PLOWHORSE", r.MenuEngineering[0].Category)
}
