package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDocument(t *testing.T) {
	el, err := Parse(strings.NewReader(`<project><b/><a/></project>`))
	require.NoError(t, err)

	res := VerifyDocument(el, nil)
	assert.False(t, res.IsOrdered())

	sorted := Sort(el, nil)
	assert.True(t, VerifyDocument(sorted, nil).IsOrdered())
}

func TestVerifyDocumentWithExplicitOrder(t *testing.T) {
	el, err := Parse(strings.NewReader(`<project><groupId>org</groupId><artifactId>demo</artifactId></project>`))
	require.NoError(t, err)

	assert.True(t, VerifyDocument(el, []string{"groupId", "artifactId"}).IsOrdered())
	assert.False(t, VerifyDocument(el, []string{"artifactId", "groupId"}).IsOrdered())
}
