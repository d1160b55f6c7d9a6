// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders stored assessments as downloadable PDF
// reports: header, report details, a colored risk box, the user's
// answers, and a screening disclaimer.
package report
