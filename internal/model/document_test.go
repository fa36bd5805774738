package model_test

import (
	"testing"

	"github.com/collabnest/teamspace/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTagsScanValue(t *testing.T) {
	tags := model.Tags{"planning", "q3"}

	v, err := tags.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{planning,q3}", v)

	var scanned model.Tags
	assert.NoError(t, scanned.Scan("{planning,q3}"))
	assert.Equal(t, tags, scanned)

	var empty model.Tags
	assert.NoError(t, empty.Scan("{}"))
	assert.Empty(t, empty)

	var fromNil model.Tags
	assert.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
}

func TestMetadataScanValue(t *testing.T) {
	meta := model.Metadata{"department": "eng"}

	v, err := meta.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"department":"eng"}`, string(v.([]byte)))

	var scanned model.Metadata
	assert.NoError(t, scanned.Scan([]byte(`{"department":"eng"}`)))
	assert.Equal(t, meta, scanned)
}

func TestCloneIsIndependent(t *testing.T) {
	tags := model.Tags{"planning"}
	meta := model.Metadata{"department": "eng"}

	tagsCopy := tags.Clone()
	metaCopy := meta.Clone()

	tagsCopy[0] = "mutated"
	metaCopy["department"] = "mutated"

	assert.Equal(t, "planning", tags[0])
	assert.Equal(t, "eng", meta["department"])
}
