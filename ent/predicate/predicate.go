// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Channel is the predicate function for channel builders.
type Channel func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Idea is the predicate function for idea builders.
type Idea func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TrendKeyword is the predicate function for trendkeyword builders.
type TrendKeyword func(*sql.Selector)

// Video is the predicate function for video builders.
type Video func(*sql.Selector)
