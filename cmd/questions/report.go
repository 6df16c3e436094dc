package main

import (
	"context"
	"fmt"

	"github.com/nerrad567/questions-core/internal/forum"
)

// report summarises what the store holds.
type report struct {
	Users     int
	Questions int
	Replies   int
	Follows   int
	Likes     int

	// MostFollowed holds "id:title" for the top followed questions.
	MostFollowed []string
}

func buildReport(ctx context.Context, store *forum.Store, top int) (*report, error) {
	users, err := store.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := store.AllQuestions(ctx)
	if err != nil {
		return nil, err
	}
	replies, err := store.AllReplies(ctx)
	if err != nil {
		return nil, err
	}
	follows, err := store.AllQuestionFollows(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := store.AllQuestionLikes(ctx)
	if err != nil {
		return nil, err
	}
	ranked, err := store.MostFollowed(ctx, top)
	if err != nil {
		return nil, err
	}

	rep := &report{
		Users:        len(users),
		Questions:    len(questions),
		Replies:      len(replies),
		Follows:      len(follows),
		Likes:        len(likes),
		MostFollowed: make([]string, 0, len(ranked)),
	}
	for _, q := range ranked {
		rep.MostFollowed = append(rep.MostFollowed, fmt.Sprintf("%d:%s", q.ID, q.Title))
	}
	return rep, nil
}
