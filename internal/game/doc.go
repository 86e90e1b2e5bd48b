// Package game runs a number baseball session for one logged-in user.
//
// A Session holds the current user and exactly one current State. Each call
// to State.Handle performs one self-contained unit of interaction (show the
// menu and read a choice, play a whole round, show a listing) and returns the
// next State:
//
//	Menu    --1 + difficulty-->  Play     --home run / init failure-->  Menu
//	Menu    --2-->               History  --shown-->                    Menu
//	Menu    --3-->               Ranking  --shown-->                    Menu
//	Menu    --4-->               Logout   (session ends)
//	Menu    --invalid-->         Menu
//
// Input comes from a LineReader, output goes to a Display, finished games are
// reported to a Registry. None of them are owned by this package.
//
// A Lobby wraps sessions with user selection: it asks for a username, runs a
// Session until Logout and asks again.
package game
