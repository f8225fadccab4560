// Package pqueue implements the bounded max-heap k-nearest-neighbors
// search needs: at most k (distance, index) pairs, the current worst kept
// at the top so a single comparison tells the caller whether a candidate
// is worth descending for.
package pqueue
