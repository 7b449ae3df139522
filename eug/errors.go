package eug

import "errors"

// ErrProgrammingTableMiss names the programming-table-miss error kind. No
// function in this package returns it: Program reports a slice that is not
// a permutation (duplicate or missing targets) with ErrBadPermutation.
var ErrProgrammingTableMiss = errors.New("eug: programming table miss")

// ErrBadPermutation indicates the permutation slice passed to Program was
// not a bijection on [0, n).
var ErrBadPermutation = errors.New("eug: not a valid permutation")
