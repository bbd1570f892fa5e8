package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentClone(t *testing.T) {
	doc := Document{"phone": {"0712345", "0798765"}}
	clone := doc.Clone()

	clone.Add("phone", "0700000")
	clone["email"] = []string{"a@x.com"}

	assert.Equal(t, Document{"phone": {"0712345", "0798765"}}, doc,
		"mutating the clone must not touch the original")
}

func TestDocumentAddPreservesOrder(t *testing.T) {
	doc := Document{}
	doc.Add("phone", "0712345")
	doc.Add("phone", "0798765")

	assert.Equal(t, []string{"0712345", "0798765"}, doc["phone"])
}

func TestDocumentFirst(t *testing.T) {
	doc := Document{"email": {"a@x.com", "b@x.com"}}

	assert.Equal(t, "a@x.com", doc.First("email"))
	assert.Equal(t, "", doc.First("phone"))
}
