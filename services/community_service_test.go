package services

import (
	"errors"
	"testing"
)

func TestCommunityPostLifecycle(t *testing.T) {
	svc := newTestService(t)
	author := createTestUser(t, svc, "author")
	reader := createTestUser(t, svc, "reader")

	post, err := svc.CreatePost(author.UserID, "Hit B rank today", "grinded all week")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddComment(reader.UserID, post.ID, "congrats"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	loaded, err := svc.GetPost(post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Title != "Hit B rank today" {
		t.Errorf("title = %q", loaded.Title)
	}
	if len(loaded.Comments) != 1 || loaded.Comments[0].Content != "congrats" {
		t.Errorf("comments = %+v", loaded.Comments)
	}

	// Only the author may edit.
	if _, err := svc.UpdatePost(reader.UserID, post.ID, "hijack", "nope"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("cross-user edit err = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.UpdatePost(author.UserID, post.ID, "Hit B rank!", "grinded all week"); err != nil {
		t.Errorf("owner edit: %v", err)
	}

	posts, err := svc.ListPosts(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hit B rank!" {
		t.Errorf("feed = %+v", posts)
	}
}

func TestCommunityPostNotFound(t *testing.T) {
	svc := newTestService(t)
	user := createTestUser(t, svc, "hunter")

	if _, err := svc.GetPost(9999); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("get err = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.AddComment(user.UserID, 9999, "hello"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("comment err = %v, want ErrPostNotFound", err)
	}
}
