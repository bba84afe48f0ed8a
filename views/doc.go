// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages from embedded templates.

Each page is parsed together with templates/layout.html at startup:

	views.Render(w, http.StatusOK, views.PageResults, views.Page{
		Title: "Results",
		Flash: flash,
		Body:  views.NewResults(resp),
	})

Body carries a page view model (VoteForm, Results, ResetConfirm,
AvailabilityEditor, Bookmarklet). Templates get these helpers:

	emoji        weather icon glyph
	humanTime    "3 minutes ago"
	join         strings.Join
	isPreferred  preferred court check
	plural       "4 votes"
	window       "9:00am-10:00am"
*/
package views
