package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func postRow(postID, authorID uuid.UUID, commentIDs string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "content", "author_id", "image_url", "comment_ids", "created_at", "updated_at",
	}).AddRow(postID.String(), "title", "content", authorID.String(), "", commentIDs, now, now)
}

// The comment insert and the post's comment_ids push must commit together.
func TestCommentRepository_Create_PushesBackReference(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewCommentRepository(gormDB)

	postID := uuid.New()
	commentID := uuid.New()
	comment := &model.Comment{
		ID:      commentID,
		Content: "nice post",
		Author:  "Anonymous",
		PostID:  postID,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .comments.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM .posts. WHERE id = \\?").
		WillReturnRows(postRow(postID, uuid.New(), "[]"))
	mock.ExpectExec("UPDATE .posts. SET .comment_ids.").
		WithArgs(`["`+commentID.String()+`"]`, sqlmock.AnyArg(), postID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), comment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The new id is appended to an already-populated array, not overwritten.
func TestCommentRepository_Create_AppendsToExistingIDs(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewCommentRepository(gormDB)

	postID := uuid.New()
	priorID := uuid.New()
	commentID := uuid.New()
	comment := &model.Comment{ID: commentID, Content: "again", Author: "hillary", PostID: postID}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .comments.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM .posts. WHERE id = \\?").
		WillReturnRows(postRow(postID, uuid.New(), `["`+priorID.String()+`"]`))
	mock.ExpectExec("UPDATE .posts. SET .comment_ids.").
		WithArgs(`["`+priorID.String()+`","`+commentID.String()+`"]`, sqlmock.AnyArg(), postID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), comment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed post lookup rolls the comment insert back; no orphan survives.
func TestCommentRepository_Create_RollsBackWhenPostMissing(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewCommentRepository(gormDB)

	comment := &model.Comment{
		ID:      uuid.New(),
		Content: "orphan",
		Author:  "Anonymous",
		PostID:  uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .comments.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM .posts. WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), comment)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed back-reference update likewise aborts the whole transaction.
func TestCommentRepository_Create_RollsBackWhenPushFails(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewCommentRepository(gormDB)

	postID := uuid.New()
	comment := &model.Comment{ID: uuid.New(), Content: "x", Author: "Anonymous", PostID: postID}
	pushErr := errors.New("update failed")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .comments.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM .posts. WHERE id = \\?").
		WillReturnRows(postRow(postID, uuid.New(), "[]"))
	mock.ExpectExec("UPDATE .posts. SET .comment_ids.").
		WillReturnError(pushErr)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), comment)
	assert.True(t, errors.Is(err, pushErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}
