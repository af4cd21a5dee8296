// Package mixer decrypts a sequence of signed integers by "mixing" it on a
// ring and reads the grove coordinates off the result.
//
// 🚀 What is mixing?
//
//	Every value is first multiplied by a decryption key. Then, for R rounds,
//	each element in its ORIGINAL input order is moved value mod (N-1)
//	positions forward around the circle (negative values move backwards).
//	The modulus is N-1 because a moving element never counts itself.
//	Afterwards the values 1000, 2000 and 3000 positions after the single
//	element 0 are the grove coordinates; their sum is the answer.
//
// ✨ Key features:
//   - O(sqrt N) per move via the ring package's stride index
//   - Part presets: PartA (key 1, 1 round), PartB (key 811589153, 10 rounds)
//   - per-round hook and context cancellation between rounds
//   - strict zero lookup: no silent pick when zero is missing or repeated
//
// ⚙️ Usage:
//
//	m, err := mixer.New(values, mixer.PartB.Options()...)
//	if err != nil { ... }
//	if err := m.Mix(); err != nil { ... }
//	sum, err := m.GroveSum()
//
// or simply:
//
//	sum, err := mixer.Solve(values, mixer.WithRounds(10), mixer.WithDecryptionKey(811589153))
//
// Complexity:
//
//   - Mix:       O(R·N·(J + N/J)) time, J = floor(sqrt(N/2)) by default
//   - GroveSum:  O(N + J + N/J)
//   - Memory:    O(N)
package mixer
