package engine

// Base score values per clear classification, before the level multiplier.
// Follows the modern guideline table.
const (
	scoreSingle      = 100
	scoreDouble      = 300
	scoreTriple      = 500
	scoreTetris      = 800
	scoreTSpinMini   = 100
	scoreTSpin       = 400
	scoreTSpinSingle = 800
	scoreTSpinDouble = 1200
	scoreTSpinTriple = 1600

	// backToBackNum/backToBackDen apply the 1.5x bonus without floats.
	backToBackNum = 3
	backToBackDen = 2
)

// LinesPerLevel is the default line-count threshold for advancing a level.
const LinesPerLevel = 10

// Scorer converts clear results into score deltas and tracks the
// back-to-back streak. Levels advance on a configurable line threshold and
// never drop below the starting level.
type Scorer struct {
	linesPerLevel int
	startLevel    int
	backToBack    bool
}

// NewScorer creates a scorer. linesPerLevel values below 1 fall back to the
// default threshold.
func NewScorer(startLevel, linesPerLevel int) *Scorer {
	if linesPerLevel < 1 {
		linesPerLevel = LinesPerLevel
	}
	if startLevel < 1 {
		startLevel = 1
	}
	return &Scorer{
		linesPerLevel: linesPerLevel,
		startLevel:    startLevel,
	}
}

// BackToBack reports whether the difficult-clear streak is active.
func (s *Scorer) BackToBack() bool {
	return s.backToBack
}

// Level returns the level for the given total of cleared lines.
func (s *Scorer) Level(totalLines int) int {
	level := totalLines/s.linesPerLevel + 1
	if level < s.startLevel {
		level = s.startLevel
	}
	return level
}

// baseScore maps a clear result to its pre-multiplier value. A T-spin with
// lines scores on the T-spin line table whether the detector called it full
// or mini; the mini distinction only matters for zero-line spins.
func baseScore(lines int, spin SpinKind) int {
	if spin != SpinNone {
		switch lines {
		case 0:
			if spin == SpinMini {
				return scoreTSpinMini
			}
			return scoreTSpin
		case 1:
			return scoreTSpinSingle
		case 2:
			return scoreTSpinDouble
		default:
			return scoreTSpinTriple
		}
	}
	switch lines {
	case 1:
		return scoreSingle
	case 2:
		return scoreDouble
	case 3:
		return scoreTriple
	case 4:
		return scoreTetris
	default:
		return 0
	}
}

// isDifficult reports whether a clear sustains the back-to-back streak:
// a Tetris or any T-spin that clears lines.
func isDifficult(lines int, spin SpinKind) bool {
	if spin != SpinNone && lines > 0 {
		return true
	}
	return lines == 4
}

// Score returns the score delta for a lock at the given level and updates
// the back-to-back flag. The 1.5x bonus applies when a difficult clear
// follows a difficult clear with no ordinary clear in between. An ordinary
// line clear breaks the streak; a zero-line lock (including a zero-line
// T-spin) leaves it untouched.
func (s *Scorer) Score(lines int, spin SpinKind, level int) int {
	base := baseScore(lines, spin)

	difficult := isDifficult(lines, spin)
	if difficult && s.backToBack {
		base = base * backToBackNum / backToBackDen
	}

	switch {
	case difficult:
		s.backToBack = true
	case lines > 0:
		s.backToBack = false
	}

	return base * level
}

// Soft and hard drop bonuses, per cell descended.
const (
	SoftDropBonus = 1
	HardDropBonus = 2
)
