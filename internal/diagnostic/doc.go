// Package diagnostic provides structured error and warning aggregation
// for board description validation.
//
// The generate path fails on the first invalid input; the check path
// keeps going and collects one diagnostic per problem so a board file
// can be fixed in a single pass. Each diagnostic carries the board
// file and pin name it relates to, plus optional suggestions.
package diagnostic
