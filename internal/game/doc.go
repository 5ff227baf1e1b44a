// Package game implements the trivia game state machine.
//
// The main type is Session, which owns the player roster and a question
// bank.Bank and drives a game from registration to final ranking. All I/O
// goes through the Prompter and Display interfaces, and all formatting
// through a Renderer, so the state machine can be driven by a terminal, a
// scripted test, or anything else that produces lines of text.
//
// # Basic Usage
//
//	b := bank.New(catalog.Default())
//	s := game.NewSession(b, prompter, display, renderer,
//		game.WithPlayers(4),
//		game.WithLogger(logger),
//	)
//	results, err := s.Run()
//
// # Phases
//
// A session moves through three phases:
//   - PhaseSetup: collect exactly K unique player names
//   - PhaseRounds: player selection, question selection, answer, scoring;
//     repeats until every question is answered
//   - PhaseResults: stable ranking by score, first place wins
//
// If the prompter reports ErrEndOfInput during the rounds, the session goes
// straight to results with the scores accumulated so far.
package game
