package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeyemi-oso/doctriage/constants"
	"github.com/adeyemi-oso/doctriage/internal/acquire"
)

// fakeAcquirer serves canned text per path, or fails, or panics.
type fakeAcquirer struct {
	texts   map[string]string
	errs    map[string]error
	panicOn string
}

func (f *fakeAcquirer) Acquire(_ context.Context, path string) (acquire.Result, error) {
	if path == f.panicOn {
		panic("nil dereference in decoder")
	}
	if err, ok := f.errs[path]; ok {
		return acquire.Result{}, err
	}
	return acquire.Result{
		Text:       f.texts[path],
		Pages:      1,
		SourceType: constants.TXT,
		Method:     constants.MethodPlainText,
	}, nil
}

func TestProcess_ClassifiesAndExtracts(t *testing.T) {
	fa := &fakeAcquirer{texts: map[string]string{
		"/in/mail.txt": "From: a@x.com\nTo: b@x.com\nSubject: Hello",
	}}
	p := NewProcessor(fa, nil, false, nil)

	res := p.Process(context.Background(), "/in/mail.txt")

	assert.Equal(t, constants.DocStatusOK, res.Status)
	assert.Equal(t, constants.Email, res.Category)
	assert.Equal(t, "mail.txt", res.FileName)
	assert.Equal(t, constants.MethodPlainText, res.Method)
	assert.Empty(t, res.Text, "text is dropped unless keep-text is on")
	require.NotNil(t, res.Fields)
	from, ok := res.Fields.Get("from")
	require.True(t, ok)
	require.NotNil(t, from)
	assert.Equal(t, "a@x.com", *from)
}

func TestProcess_KeepText(t *testing.T) {
	fa := &fakeAcquirer{texts: map[string]string{"/in/a.txt": "balance sheet"}}
	p := NewProcessor(fa, nil, true, nil)

	res := p.Process(context.Background(), "/in/a.txt")
	assert.Equal(t, "balance sheet", res.Text)
}

func TestProcess_AcquisitionFailure(t *testing.T) {
	fa := &fakeAcquirer{errs: map[string]error{"/in/bad.pdf": errors.New("malformed xref table")}}
	p := NewProcessor(fa, nil, false, nil)

	res := p.Process(context.Background(), "/in/bad.pdf")

	assert.Equal(t, constants.DocStatusFailed, res.Status)
	assert.Contains(t, res.Error, "malformed xref table")
	assert.Empty(t, res.Category)
	assert.Nil(t, res.Fields)
}

func TestProcess_PanicIsContained(t *testing.T) {
	fa := &fakeAcquirer{panicOn: "/in/cursed.pdf"}
	p := NewProcessor(fa, nil, false, nil)

	var res DocumentResult
	require.NotPanics(t, func() {
		res = p.Process(context.Background(), "/in/cursed.pdf")
	})

	assert.Equal(t, constants.DocStatusFailed, res.Status)
	assert.Contains(t, res.Error, "panic:")
	assert.Nil(t, res.Fields)
}

func TestProcessBatch_OrderAndStats(t *testing.T) {
	fa := &fakeAcquirer{
		texts: map[string]string{
			"/in/01-mail.txt":  "From: a@x.com\nSubject: Hi team",
			"/in/03-blank.txt": "",
		},
		errs: map[string]error{"/in/02-bad.pdf": errors.New("decode failed")},
	}
	p := NewProcessor(fa, nil, false, nil)

	paths := []string{"/in/01-mail.txt", "/in/02-bad.pdf", "/in/03-blank.txt"}
	batch := p.ProcessBatch(context.Background(), "/in", paths)

	require.Len(t, batch.Documents, 3)
	assert.Equal(t, "01-mail.txt", batch.Documents[0].FileName)
	assert.Equal(t, "02-bad.pdf", batch.Documents[1].FileName)
	assert.Equal(t, "03-blank.txt", batch.Documents[2].FileName)

	assert.Equal(t, constants.DocStatusOK, batch.Documents[0].Status)
	assert.Equal(t, constants.DocStatusFailed, batch.Documents[1].Status)
	assert.Equal(t, constants.Unknown, batch.Documents[2].Category)

	// an empty document still counts as processed, just unclassified
	assert.Equal(t, 2, batch.Stats.Processed)
	assert.Equal(t, 1, batch.Stats.Failed)
	assert.Equal(t, 1, batch.Stats.Unknown)

	assert.Equal(t, "/in", batch.Root)
	assert.NotEqual(t, batch.Documents[0].ID, batch.Documents[1].ID)
}

func TestProcessBatch_Empty(t *testing.T) {
	p := NewProcessor(&fakeAcquirer{}, nil, false, nil)

	batch := p.ProcessBatch(context.Background(), "/in", nil)
	assert.NotNil(t, batch.Documents)
	assert.Len(t, batch.Documents, 0)
	assert.Equal(t, BatchStats{}, batch.Stats)
}
