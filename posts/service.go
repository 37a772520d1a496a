// This file contains the business logic of the posts module. Like-toggle and
// comment-append are read-modify-write: fetch the document, mutate it in
// memory, write the whole document back. Two concurrent writers to the same
// post can race with last-write-wins on the document; that is an accepted
// property of this persistence pattern, not a guarantee to rely on.
package posts

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/db"
)

// DefaultPageLimit is the feed page size when the client does not ask for one.
const DefaultPageLimit = 10

const postNotFound = "Post not found."

// PostService provides post-related operations against the posts collection,
// with author resolution against the users collection.
type PostService struct {
	posts *mongo.Collection
	users *mongo.Collection
}

// NewPostService creates a new PostService.
func NewPostService(store *db.Store) *PostService {
	return &PostService{
		posts: store.Posts(),
		users: store.Users(),
	}
}

// List returns one feed page, newest first. The page fetch and the total
// count run concurrently as a latency optimization; they are separate
// queries with no shared snapshot, so under concurrent writes the total may
// lag the page slightly. Accepted behavior, documented rather than fixed.
func (s *PostService) List(ctx context.Context, page, limit int64) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	skip := (page - 1) * limit

	var pagePosts []Post
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)
		cur, err := s.posts.Find(gctx, bson.M{}, opts)
		if err != nil {
			return err
		}
		return cur.All(gctx, &pagePosts)
	})
	g.Go(func() error {
		var err error
		total, err = s.posts.CountDocuments(gctx, bson.M{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.NewDatabaseError("Failed to load posts.", err)
	}

	authors, err := s.resolveAuthors(ctx, pagePosts)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(pagePosts))
	for i := range pagePosts {
		post := &pagePosts[i]
		author, resolved := authors[post.Author]
		items = append(items, NewFeedItem(post, author, resolved))
	}

	return &FeedPage{
		Items:   items,
		Page:    page,
		Total:   total,
		HasMore: hasMore(skip, len(items), total),
	}, nil
}

// Create stores a new post authored by the caller. A post needs non-empty
// text or an image; with neither it is rejected.
func (s *PostService) Create(ctx context.Context, author *auth.User, text, imageURL string) (*FeedItem, error) {
	text = strings.TrimSpace(text)
	if text == "" && imageURL == "" {
		return nil, apperror.NewValidationError("Either text or image is required.", nil)
	}

	now := time.Now().UTC()
	post := &Post{
		Author:    author.ID,
		Text:      text,
		ImageURL:  imageURL,
		Likes:     []primitive.ObjectID{},
		Comments:  []Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.posts.InsertOne(ctx, post)
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to create post.", err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)

	item := NewFeedItem(post, author, true)
	return &item, nil
}

// ToggleLike flips the caller's membership in the post's like set and
// returns the updated feed item with a freshly resolved author.
func (s *PostService) ToggleLike(ctx context.Context, postID string, caller *auth.User) (*FeedItem, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.ToggleLike(caller.ID)
	post.UpdatedAt = time.Now().UTC()

	if err := s.replacePost(ctx, post); err != nil {
		return nil, apperror.NewDatabaseError("Failed to like post.", err)
	}

	return s.projectWithAuthor(ctx, post)
}

// AddComment appends a comment by the caller to the post's comment sequence
// and returns the updated feed item with a freshly resolved author.
func (s *PostService) AddComment(ctx context.Context, postID, text string, caller *auth.User) (*FeedItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.NewValidationError("Comment text is required.", nil)
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.AddComment(caller.ID, text, now)
	post.UpdatedAt = now

	if err := s.replacePost(ctx, post); err != nil {
		return nil, apperror.NewDatabaseError("Failed to comment on post.", err)
	}

	return s.projectWithAuthor(ctx, post)
}

// getPost fetches a post by its stringified id. A malformed id maps to the
// same not-found failure as an unknown one.
func (s *PostService) getPost(ctx context.Context, postID string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, apperror.NewNotFoundError(postNotFound, err)
	}

	var post Post
	if err := s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFoundError(postNotFound, nil)
		}
		return nil, apperror.NewDatabaseError("Failed to load post.", err)
	}
	return &post, nil
}

// replacePost writes the mutated document back whole.
func (s *PostService) replacePost(ctx context.Context, post *Post) error {
	_, err := s.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	return err
}

// projectWithAuthor re-resolves the post's author and builds the feed item,
// so mutating endpoints always return a display-ready author. An author that
// no longer exists degrades to the unresolved projection.
func (s *PostService) projectWithAuthor(ctx context.Context, post *Post) (*FeedItem, error) {
	var author auth.User
	err := s.users.FindOne(ctx, bson.M{"_id": post.Author}).Decode(&author)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			item := NewFeedItem(post, nil, false)
			return &item, nil
		}
		return nil, apperror.NewDatabaseError("Failed to load post author.", err)
	}

	item := NewFeedItem(post, &author, true)
	return &item, nil
}

// resolveAuthors fetches all distinct authors of the given posts in one
// query and returns them keyed by id.
func (s *PostService) resolveAuthors(ctx context.Context, pagePosts []Post) (map[primitive.ObjectID]*auth.User, error) {
	authors := make(map[primitive.ObjectID]*auth.User)
	if len(pagePosts) == 0 {
		return authors, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(pagePosts))
	ids := make([]primitive.ObjectID, 0, len(pagePosts))
	for i := range pagePosts {
		id := pagePosts[i].Author
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	cur, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to load post authors.", err)
	}
	var found []auth.User
	if err := cur.All(ctx, &found); err != nil {
		return nil, apperror.NewDatabaseError("Failed to load post authors.", err)
	}
	for i := range found {
		authors[found[i].ID] = &found[i]
	}
	return authors, nil
}
