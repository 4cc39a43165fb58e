package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent problem. The argument is supposed to be a well-formed CNF:
// literals are non-null ints, negative for a negated variable.
// An empty inner slice is kept as an empty clause, making the problem
// trivially unsatisfiable.
func ParseSlice(cnf [][]int) (*Problem, error) {
	var (
		f      Formula
		nbVars int
	)
	for _, line := range cnf {
		clause := make(Clause, len(line))
		for j, val := range line {
			if val == 0 {
				return nil, fmt.Errorf("null literal in clause %v", line)
			}
			clause[j] = IntToLit(val)
			if v := clause[j].Var; v >= nbVars {
				nbVars = v + 1
			}
		}
		f = append(f, clause)
	}
	return NewProblem(f, nbVars), nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a possibly negated int from r, skipping leading spaces.
// 'b' holds the last byte read and is advanced as the int is consumed.
// Can return EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("invalid syntax %q in header", line)
	}
	if nbVars, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("nbVars not an int: %q", fields[1])
	}
	if nbClauses, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, fmt.Errorf("nbClauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding Problem.
// Comment lines are ignored; the "p cnf" header fixes the number of
// variables, and every clause must stay within it.
func ParseCNF(reader io.Reader) (*Problem, error) {
	r := bufio.NewReader(reader)
	var (
		f      Formula
		nbVars int
	)
	b, err := r.ReadByte()
	for err == nil {
		if b == 'c' { // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		} else if b == 'p' { // Parse header
			var nbClauses int
			nbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %v", err)
			}
			f = make(Formula, 0, nbClauses)
		} else {
			clause := make(Clause, 0, 3)
			for {
				val, err := readInt(&b, r)
				if err == io.EOF {
					if len(clause) != 0 {
						return nil, fmt.Errorf("unfinished clause while EOF found")
					}
					break // Trailing spaces at the end of the file are fine
				}
				if err != nil {
					return nil, fmt.Errorf("cannot parse clause: %v", err)
				}
				if val == 0 {
					f = append(f, clause)
					break
				}
				if val > nbVars || -val > nbVars {
					return nil, fmt.Errorf("invalid literal %d for problem with %d vars only", val, nbVars)
				}
				clause = append(clause, IntToLit(val))
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	return NewProblem(f, nbVars), nil
}
