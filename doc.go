// Package memorize implements the game-state core of a card-matching
// ("memory") game.
//
// A Game owns a shuffled deck of paired cards, enforces that at most one
// unmatched card waits face-up for its partner, detects matches and keeps
// per-card bonus-time bookkeeping against an injected Clock. Rendering,
// input handling and animation belong to the caller, which observes the
// game through Snapshot and Subscribe.
//
// Basic usage:
//
//	emojis := []string{"🐶", "🐱", "🦊"}
//	g, err := memorize.New(len(emojis), func(i int) string { return emojis[i] }, memorize.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cancel := g.Subscribe(func() { render(g.Snapshot()) })
//	defer cancel()
//
//	move, err := g.Choose(g.Cards()[0].ID)
//
// Session wraps a Game with restart support for view models that replace
// the whole game on "new game".
package memorize
