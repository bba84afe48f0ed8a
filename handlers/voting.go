// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/courtcaptain/auth"
	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/views"
)

type VotingHandler struct {
	votes *store.VoteStore
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{votes: store.NewVoteStore(db), cfg: cfg}
}

// voteInput is a submitted vote form. Option is free text in time mode
// and a court label in court mode.
type voteInput struct {
	Name   string `validate:"required,max=64"`
	Day    string `validate:"required,day"`
	Option string `validate:"required,max=64"`
}

// Form handles GET /
func (h *VotingHandler) Form(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.cfg, http.StatusOK, views.PageVote, "Vote", views.NewVoteForm(h.cfg.VotingMode), nil)
}

// Submit handles POST /
func (h *VotingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.reject(w, r, voteInput{}, "Could not read the form. Please try again.")
		return
	}

	in := voteInput{
		Name:   formValue(r, "name"),
		Day:    formValue(r, "day"),
		Option: formValue(r, "option", "time_text", "court"),
	}

	if msg := h.check(in); msg != "" {
		h.reject(w, r, in, msg)
		return
	}

	day, _ := models.ParseDay(in.Day)
	vote, err := h.votes.Upsert(r.Context(), models.Vote{Name: in.Name, Day: day, Option: in.Option})
	if err != nil {
		reqLog(r).Error("failed to save vote", "error", err)
		render(w, r, h.cfg, http.StatusInternalServerError, views.PageVote, "Vote", h.form(in),
			&auth.Flash{Kind: models.FlashError, Message: "Could not save your vote. Please try again."})
		return
	}

	slog.Info("vote recorded", "name", vote.Name, "day", vote.Day, "option", vote.Option)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Vote submitted. Thanks!", "/results")
}

// check returns a user-facing message for the first invalid field, or "".
func (h *VotingHandler) check(in voteInput) string {
	court := h.cfg.VotingMode == models.ModeCourt

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return "Please check your vote and try again."
		}
		switch verrs[0].Field() {
		case "Name":
			return "Please enter your name (up to 64 characters)."
		case "Day":
			return "Please select Saturday or Sunday."
		default:
			if court {
				return "Please choose a court."
			}
			return "Please provide a time like '9-10am'."
		}
	}

	if court && validate.Var(in.Option, "court") != nil {
		return "Please choose one of the listed courts."
	}
	return ""
}

// reject re-renders the form with the submitted values and an error flash.
func (h *VotingHandler) reject(w http.ResponseWriter, r *http.Request, in voteInput, msg string) {
	reqLog(r).Warn("vote rejected", "reason", msg, "day", in.Day)
	render(w, r, h.cfg, http.StatusBadRequest, views.PageVote, "Vote", h.form(in),
		&auth.Flash{Kind: models.FlashError, Message: msg})
}

func (h *VotingHandler) form(in voteInput) views.VoteForm {
	form := views.NewVoteForm(h.cfg.VotingMode)
	form.Name = strings.TrimSpace(in.Name)
	form.Day = in.Day
	form.Option = in.Option
	return form
}
