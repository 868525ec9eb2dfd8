package engine

import "regexp"

// Compiled once at package init. The loose phone pattern deliberately accepts
// runs of digits, spaces, dashes and parens; precision is not the goal here,
// plain-text extractability is.
var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\+?[\d\s\-()]{7,}`)

	specialCharPattern = regexp.MustCompile(`[│┃┆═╔╗╚╝►◆●★✓✗▸▪▫⊙⊕]`)

	bulletPattern   = regexp.MustCompile(`^\s*[-•▪▸*]\s`)
	numberedPattern = regexp.MustCompile(`^\s*\d+[.)]\s`)

	resultPattern = regexp.MustCompile(`(?i)result|led to|improved|increased|decreased|reduced|achieved|saving`)

	percentPattern    = regexp.MustCompile(`\d+\s*%`)
	currencyPattern   = regexp.MustCompile(`\$\s*[\d,]+\.?\d*`)
	rupeePattern      = regexp.MustCompile(`₹\s*[\d,]+`)
	bigNumberPattern  = regexp.MustCompile(`\b\d{3,}\b`)
	multiplierPattern = regexp.MustCompile(`(?i)\d+x\s`)
	durationPattern   = regexp.MustCompile(`(?i)\d+\s*(hours|days|weeks|months|years|minutes)\b`)
)
