// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web renders the questionnaire wizard and result views from
// templates embedded at build time. It is the single rendering adapter
// over the form state machine: handlers fill a SectionPage or
// ResultPage and call RenderSection/RenderResult.
package web
