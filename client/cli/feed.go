// Feed commands: feed, post, like, comment, plus the feed item rendering.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/user/socialpost-go/client/session"
	"github.com/user/socialpost-go/posts"
)

func (c *Cli) runFeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	page := fs.Int64("page", 1, "page number, 1-based")
	limit := fs.Int64("limit", posts.DefaultPageLimit, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The feed is public; a session only adds the "liked by you" marker.
	var viewerID string
	if sess, err := c.sessions.Load(); err == nil {
		viewerID = sess.User.ID
	} else if !errors.Is(err, session.ErrNotLoggedIn) {
		return err
	}

	feed, err := c.api.ListPosts(ctx, *page, *limit)
	if err != nil {
		return err
	}

	if len(feed.Items) == 0 {
		c.io.Println("No posts yet.")
		return nil
	}

	for i := range feed.Items {
		c.renderItem(&feed.Items[i], viewerID)
	}
	c.io.Printf("page %d of %d posts", feed.Page, feed.Total)
	if feed.HasMore {
		c.io.Printf(" (more: -page %d)", feed.Page+1)
	}
	c.io.Println("")
	return nil
}

func (c *Cli) runPost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	text := fs.String("text", "", "post text")
	image := fs.String("image", "", "path to an image file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := c.requireSession()
	if err != nil {
		return err
	}

	if *text == "" && *image == "" {
		return fmt.Errorf("either -text or -image is required")
	}

	resp, err := c.api.CreatePost(ctx, *text, *image)
	if err != nil {
		return err
	}

	c.io.Println("Posted:")
	c.renderItem(&resp.Post, sess.User.ID)
	return nil
}

func (c *Cli) runLike(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: spostctl like POST_ID")
	}

	sess, err := c.requireSession()
	if err != nil {
		return err
	}

	resp, err := c.api.ToggleLike(ctx, args[0])
	if err != nil {
		return err
	}

	c.renderItem(&resp.Post, sess.User.ID)
	return nil
}

func (c *Cli) runComment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: spostctl comment POST_ID TEXT...")
	}

	sess, err := c.requireSession()
	if err != nil {
		return err
	}

	resp, err := c.api.AddComment(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	c.renderItem(&resp.Post, sess.User.ID)
	return nil
}

// renderItem prints one feed item. viewerID marks posts the viewer has
// liked; it may be empty for anonymous viewing.
func (c *Cli) renderItem(item *posts.FeedItem, viewerID string) {
	author := item.Author.Name
	if author == "" {
		author = item.Author.ID
	}

	c.io.Printf("%s  %s  (%s)\n", item.ID, author, item.CreatedAt.Format("2006-01-02 15:04"))
	if item.Text != "" {
		c.io.Printf("  %s\n", item.Text)
	}
	if item.ImageURL != "" {
		c.io.Printf("  image: %s\n", item.ImageURL)
	}

	liked := ""
	if viewerID != "" && itemLikedBy(item, viewerID) {
		liked = " (liked by you)"
	}
	c.io.Printf("  likes: %d%s, comments: %d\n", item.LikesCount, liked, item.CommentsCount)
}

func itemLikedBy(item *posts.FeedItem, viewerID string) bool {
	for _, id := range item.LikedBy {
		if id == viewerID {
			return true
		}
	}
	return false
}
