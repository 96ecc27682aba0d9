// meta/meta.go
package meta

// SIDE_LENGTH is the board size used when none is configured. Full searches
// from an empty board of side 3 visit hundreds of millions of states.
const SIDE_LENGTH = 2

// OPPONENT is the strategy the console and the web API play against. It looks
// one move ahead, so it answers at once on every board size.
const OPPONENT = "rough"

// HUMAN_RETRIES is how often a console player may enter an illegal move in a row.
const HUMAN_RETRIES = 5

const ADDR = ":8080"

// SHUTDOWN_SECONDS bounds how long the server waits for open requests.
const SHUTDOWN_SECONDS = 5
