// Package rng provides seeded random number generation for reproducible
// clustering runs.
//
// Two sources with the same seed produce bit-identical sequences, which makes
// k-means++ initialization and silhouette sampling exactly repeatable. The
// generator is splitmix64, chosen for portability: implementations in other
// languages with the same constants produce the same sequence.
package rng
