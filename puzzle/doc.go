// Package puzzle wires independent puzzle days into a common pipeline:
//
//	read input file → Part 1 → Part 2 → print
//
// What:
//
//   - Solution: a day number, a title and two PartFuncs.
//   - Registry: days register themselves from init via Register;
//     Lookup and Days query the registered set.
//   - Runner: resolves a day's input path, reads it, solves both parts
//     and reports a Result with timing. RunAll solves several days
//     concurrently; each day is still solved sequentially on its own.
//   - Result.WriteTo prints exactly "Part 1: <n>" and "Part 2: <n>".
//
// Errors:
//
//   - ErrUnknownDay: no solution registered for the requested day.
//   - ErrInputNotFound: the day's input file does not exist.
//   - ErrPartFailed: a PartFunc returned an error (wrapped).
//   - context.Canceled / DeadlineExceeded: checked before each part.
package puzzle
