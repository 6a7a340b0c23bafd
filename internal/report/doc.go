// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report prints the final outcome of a batch run once every job
// is terminal: a summary line per job in input order, followed by the
// captured stdout and stderr of every failed job, shown verbatim.
package report
