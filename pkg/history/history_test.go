package history

import (
	"path/filepath"
	"testing"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordSubmission(&Submission{TaskID: "a", Kind: KindAdhoc, Target: "all", Module: "shell"}))
	require.NoError(t, db.RecordSubmission(&Submission{TaskID: "b", Kind: KindPlaybook, Target: "KobeProject/first", Tag: "hello"}))
	assert.Error(t, db.RecordSubmission(&Submission{Kind: KindAdhoc}))
	assert.Error(t, db.RecordSubmission(&Submission{TaskID: "a", Kind: KindAdhoc}))

	subs, err := db.List(0)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "b", subs[0].TaskID)
	assert.Equal(t, "a", subs[1].TaskID)

	subs, err = db.List(1)
	require.NoError(t, err)
	require.Len(t, subs, 1)
}

func TestRecordResult(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.RecordSubmission(&Submission{TaskID: "a", Kind: KindAdhoc}))
	require.NoError(t, db.RecordSubmission(&Submission{TaskID: "b", Kind: KindAdhoc}))

	require.NoError(t, db.RecordResult(&client.TaskResult{ID: "a", Finished: true, Success: true, Message: "ok"}))

	got, err := db.Get("a")
	require.NoError(t, err)
	assert.True(t, got.Finished)
	assert.True(t, got.Success)
	assert.Equal(t, "ok", got.Message)
	assert.NotNil(t, got.FetchedAt)

	pending, err := db.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].TaskID)

	assert.ErrorIs(t, db.RecordResult(&client.TaskResult{ID: "zzz"}), ErrUnknownTask)
	_, err = db.Get("zzz")
	assert.ErrorIs(t, err, ErrUnknownTask)
}
