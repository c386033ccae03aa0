package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/config"
	"github.com/alnah/go-blogposts/internal/fileutil"
	"github.com/alnah/go-blogposts/internal/hints"
)

// runList prints the metadata of every post.
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseListFlags(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: list takes no arguments, got %q", ErrUsage, rest)
	}
	if flags.sort != "" {
		if flags.sort != config.SortDate && flags.sort != config.SortName {
			return fmt.Errorf("%w: --sort %q (want date or name)", ErrUsage, flags.sort)
		}
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}

	posts, err := s.loader.ListPostsMetadata(ctx)
	if err != nil {
		return contentDirHint(err, s.cfg.Content.Dir)
	}

	order := s.cfg.Listing.Sort
	if flags.sort != "" {
		order = flags.sort
	}
	switch order {
	case config.SortName:
		blogposts.SortByName(posts)
	case config.SortDate, "":
		blogposts.SortByDate(posts)
	}
	s.logger.Debug("listing posts", "count", len(posts), "sort", order)

	switch flags.format {
	case formatJSON:
		return writeJSON(env.Stdout, posts)
	case formatYAML:
		return writeYAML(env.Stdout, posts)
	default:
		return writeListText(env.Stdout, posts, s.cfg.Listing.DateFormat)
	}
}

// runIDs prints one route descriptor per post.
func runIDs(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseIDsFlags(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: ids takes no arguments, got %q", ErrUsage, rest)
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}

	paths, err := s.loader.ListPostIDs(ctx)
	if err != nil {
		return contentDirHint(err, s.cfg.Content.Dir)
	}

	switch flags.format {
	case formatJSON:
		return writeJSON(env.Stdout, paths)
	case formatYAML:
		return writeYAML(env.Stdout, paths)
	default:
		return writeIDsText(env.Stdout, paths)
	}
}

// runShow prints a single post.
func runShow(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseShowFlags(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("%w: show takes exactly one post id", ErrUsage)
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}

	post, err := s.loader.LoadPost(ctx, rest[0])
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !fileutil.DirExists(s.cfg.Content.Dir) {
			return withHint(err, hints.ForContentDirNotFound(s.cfg.Content.Dir))
		}
		return err
	}

	switch flags.format {
	case formatJSON:
		return writeJSON(env.Stdout, post)
	case formatYAML:
		return writeYAML(env.Stdout, post)
	default:
		_, err := fmt.Fprint(env.Stdout, post.Content)
		return err
	}
}
