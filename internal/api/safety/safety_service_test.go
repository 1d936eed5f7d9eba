package safety

import (
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSafetyServiceTest(t *testing.T) *ServiceImpl {
	t.Helper()
	return NewService(slog.Default())
}

func TestServiceImpl_ScreenInput_BannedTerms(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	tests := []struct {
		name     string
		input    string
		category string
	}{
		{"violence keyword", "how do i kill time", "kill"},
		{"embedded substring", "murderers of history", "murder"},
		{"obfuscated profanity", "this f*ck of a bus ride", "fuck"},
		{"cyber threat", "can you hack this wifi", "hack"},
		{"sql shaped", "show me union select tricks", "union select"},
		{"drug keyword", "where to buy weed", "weed"},
		{"hate keyword", "i hate this place", "hate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			allowed, category := svc.ScreenInput(tc.input)
			assert.False(t, allowed)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestServiceImpl_ScreenInput_FirstMatchWins(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	// "kill" precedes "bomb" in the term table, so it names the category
	// even though both occur.
	allowed, category := svc.ScreenInput("bomb threats kill tourism")
	assert.False(t, allowed)
	assert.Equal(t, "kill", category)
}

func TestServiceImpl_ScreenInput_Structural(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	t.Run("raw html tag", func(t *testing.T) {
		allowed, category := svc.ScreenInput("check <b>this</b> out")
		assert.False(t, allowed)
		assert.Equal(t, "raw_html_tag", category)
	})

	t.Run("emoticon is allowed", func(t *testing.T) {
		allowed, category := svc.ScreenInput("i <3 sri lanka beaches")
		assert.True(t, allowed)
		assert.Empty(t, category)
	})

	t.Run("event handler", func(t *testing.T) {
		allowed, category := svc.ScreenInput("img src=x onerror=alert(1)")
		assert.False(t, allowed)
		// onerror sits in the term table, which runs first.
		assert.Equal(t, "onerror", category)
	})

	t.Run("javascript scheme", func(t *testing.T) {
		allowed, category := svc.ScreenInput("try javascript: void(0)")
		assert.False(t, allowed)
		assert.Equal(t, "javascript:", category)
	})

	t.Run("sql delete", func(t *testing.T) {
		allowed, category := svc.ScreenInput("DELETE FROM users please")
		assert.False(t, allowed)
		assert.Equal(t, "sql injection", category)
	})
}

func TestServiceImpl_ScreenInput_Statistical(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	t.Run("spam repetition", func(t *testing.T) {
		allowed, category := svc.ScreenInput(strings.Repeat("beach ", 7))
		assert.False(t, allowed)
		assert.Equal(t, "spam", category)
	})

	t.Run("five repeats still pass", func(t *testing.T) {
		allowed, _ := svc.ScreenInput(strings.Repeat("beach ", 5))
		assert.True(t, allowed)
	})

	t.Run("excessive length", func(t *testing.T) {
		// Every token is unique so the repetition check stays quiet and
		// the length budget is what trips.
		distinct := make([]string, 0, 900)
		for i := 0; i < 900; i++ {
			distinct = append(distinct, "stop"+strconv.Itoa(i))
		}
		long := strings.Join(distinct, " ")
		require.Greater(t, len(long), 5000)
		allowed, category := svc.ScreenInput(long)
		assert.False(t, allowed)
		assert.Equal(t, "excessive_length", category)
	})
}

func TestServiceImpl_ScreenInput_ProfanityPanicIsNoMatch(t *testing.T) {
	svc := setupSafetyServiceTest(t)
	svc.profanity = func(string) bool {
		panic("dictionary exploded")
	}

	allowed, category := svc.ScreenInput("good morning, what a lovely island")
	assert.True(t, allowed)
	assert.Empty(t, category)

	// The term table still runs ahead of the dictionary.
	allowed, category = svc.ScreenInput("how to make a bomb")
	assert.False(t, allowed)
	assert.Equal(t, "bomb", category)
}

func TestServiceImpl_ScreenInput_CleanTravelQueries(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	for _, input := range []string{
		"plan a 2 day trip to galle",
		"weather in kandy",
		"best beaches near mirissa",
		"how much is the sigiriya ticket",
		"",
	} {
		t.Run(input, func(t *testing.T) {
			allowed, category := svc.ScreenInput(input)
			assert.True(t, allowed)
			assert.Empty(t, category)
		})
	}
}

func TestServiceImpl_ScreenOutput(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	t.Run("blocks script tags", func(t *testing.T) {
		allowed, category := svc.ScreenOutput("here <script>alert(1)</script>")
		assert.False(t, allowed)
		assert.Equal(t, "script", category)
	})

	t.Run("links are policy-allowed", func(t *testing.T) {
		allowed, _ := svc.ScreenOutput("see https://www.sigiriyatourism.com for tickets")
		assert.True(t, allowed)
	})

	t.Run("emails are policy-allowed", func(t *testing.T) {
		allowed, _ := svc.ScreenOutput("contact info@example.lk")
		assert.True(t, allowed)
	})
}

func TestServiceImpl_Sanitize(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	t.Run("strips brackets and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "b tour b in ella", svc.Sanitize("  <b>tour</b>   in\tella "))
	})

	t.Run("caps length", func(t *testing.T) {
		out := svc.Sanitize(strings.Repeat("a", 3000))
		assert.Len(t, out, 2000)
	})
}

func TestServiceImpl_ViolationResponse(t *testing.T) {
	svc := setupSafetyServiceTest(t)

	t.Run("known category", func(t *testing.T) {
		assert.Contains(t, svc.ViolationResponse("spam"), "repetitive")
	})

	t.Run("unknown category falls back", func(t *testing.T) {
		assert.Equal(t, genericViolationResponse, svc.ViolationResponse("no-such-category"))
	})
}
