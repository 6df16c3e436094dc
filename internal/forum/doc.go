// Package forum is the read-only query layer over the questions store.
//
// It maps rows of the five forum tables onto typed records (User, Question,
// Reply, QuestionFollow, QuestionLike) and exposes two kinds of operation
// on Store:
//
//   - Finders look records up in a single table by id, natural key or
//     foreign key (FindUserByID, FindRepliesByQuestionID, ...).
//   - Navigators join across tables to follow a relationship
//     (FollowersForQuestion, LikedQuestionsForUser, MostFollowed, ...).
//
// Records returned by a Store remember it, so relationships can be walked
// lazily from the record itself:
//
//	q, err := store.FindQuestionByID(ctx, 1)
//	if err != nil || q == nil {
//	    return err
//	}
//	author, err := q.Author(ctx)
//
// Every call issues exactly one statement and returns fully materialised
// results. Nothing is cached; chained traversal is N+1 by construction.
// Store.Thread is the one prefetching helper: it loads a question's whole
// reply tree in a single statement.
//
// # Absent vs empty
//
// Singular finders return (nil, nil) when no row matches. Plural finders
// and navigators return an empty, non-nil slice. Operations that must tell
// "zero" apart from "no such row" (NumLikesForQuestion, AverageKarma)
// return ErrQuestionNotFound or ErrUserNotFound instead.
//
// # Thread Safety
//
// A Store holds no mutable state after construction; its safety under
// concurrent use is that of the Executor it wraps.
package forum
