package normalize

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"case and spacing", "  STEPHEN   CURRY  ", "stephen curry"},
		{"accents", "Nikola Jokić", "nikola jokic"},
		{"multiple accents", "Dražen Petrović", "drazen petrovic"},
		{"hall of fame asterisk", "Kareem Abdul-Jabbar*", "kareem abdul-jabbar"},
		{"periods", "J.J. Redick", "jj redick"},
		{"apostrophe", "Shaquille O'Neal", "shaquille oneal"},
		{"suffix", "Gary Trent Jr.", "gary trent jr"},
		{"non ascii without decomposition", "Ørlando", "rlando"},
		{"compatibility ligature", "ﬁnals", "finals"},
		{"non-breaking space", "Luka\u00a0Dončić", "luka doncic"},
		{"team initials", "L.A. Clippers", "la clippers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func TestName_Idempotent(t *testing.T) {
	inputs := []string{
		"", "Stephen Curry", "  Nikola   Jokić* ", "ℌoward", "Ǆuric", "O'Neal, Jr.", "ＬｅＢｒｏｎ", "Ångströḿ",
	}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "Name must be idempotent for %q", in)
	}
}

func TestName_EquivalentSpellings(t *testing.T) {
	assert.Equal(t, Name("Stephen Curry"), Name("  STEPHEN   CURRY  "))
	assert.Equal(t, Name("Luka Dončić"), Name("luka doncic"))
}

func TestName_ConcurrentCallers(t *testing.T) {
	const workers = 8
	want := "nikola jokic doncic ginobili"

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if got := Name("Nikola Jokić Dončić Ginóbili"); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		assert.Equal(t, want, got)
	}
}
