package sim

import "github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/gate"

// applySingle applies a 2x2 matrix to the target qubit, pairing each basis
// index with its partner that differs only in the target bit. In-place:
// the state is owned exclusively by the running Simulate call.
func applySingle(amps []complex128, target int, m gate.Single) {
	bit := 1 << target
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := amps[i], amps[j]
			amps[i] = m[0][0]*a0 + m[0][1]*a1
			amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

// applyTwo applies a 4x4 matrix to an ordered qubit pair. For each basis
// index with both target bits clear, the four indices that differ only in
// those bits form one group; the local index within the group is
// first·2 + second, matching the gate library's matrix basis order.
func applyTwo(amps []complex128, first, second int, m gate.Two) {
	fb := 1 << first
	sb := 1 << second
	for i := range amps {
		if i&fb == 0 && i&sb == 0 {
			idx := [4]int{i, i | sb, i | fb, i | fb | sb}
			in := [4]complex128{amps[idx[0]], amps[idx[1]], amps[idx[2]], amps[idx[3]]}
			for r := 0; r < 4; r++ {
				amps[idx[r]] = m[r][0]*in[0] + m[r][1]*in[1] + m[r][2]*in[2] + m[r][3]*in[3]
			}
		}
	}
}
