package blogposts_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing/fstest"

	"github.com/alnah/go-blogposts"
)

func exampleFS() fstest.MapFS {
	return fstest.MapFS{
		"hello-world.md": &fstest.MapFile{Data: []byte("---\ntitle: \"Hello World\"\ndate: \"2024-01-01\"\n---\n# Hi\n\nWelcome.")},
		"newer.md":       &fstest.MapFile{Data: []byte("---\ndate: \"2024-06-01\"\n---\nLater.")},
	}
}

// Example loads a single post and prints its rendered body.
func Example() {
	loader, err := blogposts.NewLoader("posts", blogposts.WithFS(exampleFS()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	post, err := loader.LoadPost(context.Background(), "hello-world")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(post.Title)
	fmt.Print(post.Content)
	// Output:
	// Hello World
	// <h1>Hi</h1>
	// <p>Welcome.</p>
}

// ExampleSortByDate builds a newest-first index.
func ExampleSortByDate() {
	loader, err := blogposts.NewLoader("posts", blogposts.WithFS(exampleFS()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	posts, err := loader.ListPostsMetadata(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	blogposts.SortByDate(posts)
	for _, p := range posts {
		fmt.Println(p.Date, p.DisplayTitle())
	}
	// Output:
	// 2024-06-01 Newer
	// 2024-01-01 Hello World
}

// ExampleLoader_ListPostIDs lists route parameters for static path generation.
func ExampleLoader_ListPostIDs() {
	loader, err := blogposts.NewLoader("posts", blogposts.WithFS(exampleFS()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	paths, err := loader.ListPostIDs(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p.Params.ID)
	}
	// Output:
	// hello-world
	// newer
}

// ExampleLoader_LoadPost_notFound shows how to detect a missing post.
func ExampleLoader_LoadPost_notFound() {
	loader, err := blogposts.NewLoader("posts", blogposts.WithFS(exampleFS()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = loader.LoadPost(context.Background(), "missing")
	fmt.Println(errors.Is(err, fs.ErrNotExist))

	_, err = loader.LoadPost(context.Background(), "../secret")
	fmt.Println(errors.Is(err, blogposts.ErrInvalidID))
	// Output:
	// true
	// true
}
