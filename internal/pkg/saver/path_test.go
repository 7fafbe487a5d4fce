package saver

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePath(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	p := GeneratePath("김철수", "LNF", at)
	assert.Equal(t, fmt.Sprintf("김철수/2026-03-14/lnf/%d.webm", at.UnixMilli()), p)
}

func TestGeneratePath_Sanitizes(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	p := GeneratePath("Jane O'Neil/2", "ORF", at)
	assert.Equal(t, fmt.Sprintf("Jane_O_Neil_2/2026-03-14/orf/%d.webm", at.UnixMilli()), p)
}

func TestGeneratePath_EmptyName(t *testing.T) {
	p := GeneratePath("", "PSF", time.Now())
	assert.Contains(t, p, "unknown/")
}
