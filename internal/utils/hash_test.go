package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasher_MatchesHashString(t *testing.T) {
	h := NewHasher("secret")
	body := []byte(`{"category":"insight","content":"hello"}`)

	assert.Equal(t, HashString(string(body), "secret"), h.SumHex(body))
	assert.Len(t, h.Sum(body), 32)
}

func TestHasher_KeyMatters(t *testing.T) {
	body := []byte("payload")
	assert.NotEqual(t, NewHasher("a").SumHex(body), NewHasher("b").SumHex(body))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("secret")
	body := []byte("payload")
	sig := h.SumHex(body)

	assert.True(t, h.Verify(body, sig))
	assert.False(t, h.Verify([]byte("tampered"), sig))
	assert.False(t, h.Verify(body, "not-hex"))
	assert.False(t, h.Verify(body, ""))
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher("secret")
	want := HashString("same", "secret")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, want, h.SumHex([]byte("same")))
			}
		}()
	}
	wg.Wait()
}

func TestHashString_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		HashString("what do ya want for nothing?", "Jefe"),
	)
}
