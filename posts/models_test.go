package posts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleLike_AddsThenRemoves(t *testing.T) {
	post := &Post{Likes: []primitive.ObjectID{}}
	user := primitive.NewObjectID()

	liked := post.ToggleLike(user)
	assert.True(t, liked)
	assert.True(t, post.HasLiked(user))
	assert.Len(t, post.Likes, 1)

	// The idempotent pair: the second toggle undoes the first.
	liked = post.ToggleLike(user)
	assert.False(t, liked)
	assert.False(t, post.HasLiked(user))
	assert.Len(t, post.Likes, 0)
}

func TestToggleLike_NeverDuplicates(t *testing.T) {
	post := &Post{Likes: []primitive.ObjectID{}}
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	post.ToggleLike(first)
	post.ToggleLike(second)
	post.ToggleLike(first)
	post.ToggleLike(first)

	assert.Len(t, post.Likes, 2)
	assert.True(t, post.HasLiked(first))
	assert.True(t, post.HasLiked(second))
}

func TestToggleLike_RemovesOnlyTheCaller(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	post := &Post{Likes: []primitive.ObjectID{a, b, c}}

	post.ToggleLike(b)

	assert.Equal(t, []primitive.ObjectID{a, c}, post.Likes)
}

func TestAddComment_AppendsInOrder(t *testing.T) {
	post := &Post{Comments: []Comment{}}
	author := primitive.NewObjectID()
	now := time.Now().UTC()

	post.AddComment(author, "first", now)
	post.AddComment(author, "second", now.Add(time.Second))

	assert.Len(t, post.Comments, 2)
	assert.Equal(t, "first", post.Comments[0].Text)
	assert.Equal(t, "second", post.Comments[1].Text)
	assert.Equal(t, author, post.Comments[0].Author)
}
