package session

// addTableProgress credits both factors of a correct answer. A square
// credits its operand twice. Operands outside the grid are tracked too
// but no achievement targets them.
func (s *State) addTableProgress(a, b int) {
	if s.TableProgress == nil {
		s.TableProgress = make(map[int]int)
	}
	s.TableProgress[a]++
	s.TableProgress[b]++
}

// Table returns the correct-answer count for operand n.
func (s *State) Table(n int) int {
	return s.TableProgress[n]
}
