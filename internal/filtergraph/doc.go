// Package filtergraph builds the ffmpeg -filter_complex string for a
// slideshow.
//
// Every input i is fitted into the target frame and labelled [fi]:
//
//	[i:v]scale=...,pad=W:H:(ow-iw)/2:(oh-ih)/2,setsar=1[fi]
//
// Adjacent slides are then chained pairwise with xfade, each step producing
// [v(i+1)]:
//
//	[f0][f1]xfade=transition=fade:duration=1:offset=2[v1]
//
// The graph is a strict linear chain. Its output label is [f0] for a single
// input and [v(N-1)] otherwise, so it always names a label defined earlier
// in the same graph.
package filtergraph
