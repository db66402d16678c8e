// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: text, optional pub_date
  - UpdateQuestionRequest: optional text, optional pub_date
  - AddChoiceRequest: text
  - VoteRequest: choice_id

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: question_id, admin_key
  - AddChoiceResponse: choice_id
  - VoteResponse: question_id, choice_id, results_url
  - QuestionListResponse: questions, message (set when the list is empty)
  - QuestionDetailResponse: question fields plus choices without tallies
  - QuestionResultsResponse: question fields plus choices with tallies
  - QuestionAdminResponse: full question state for the admin view
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Question: id, text, publish timestamp; ChoiceCount is derived at
    query time and never stored
  - Choice: id, owning question id, text, vote tally

A question is "published" once its pub_date has passed and "displayed"
once it is published and owns at least one choice. Those predicates live
in the polls package; the types here are plain data.
*/
package models
