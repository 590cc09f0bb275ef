// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Citation pairs an original-language paragraph with its translation and is
// presented as evidence for a generated answer.
type Citation struct {
	BookID Identifier `json:"book_id"`
	ParaID Identifier `json:"para_id"`

	PaliParagraph        string `json:"pali_paragraph"`
	TranslationParagraph string `json:"translation_paragraph"`
}

// AnswerResponse is the body returned by POST /answer.
type AnswerResponse struct {
	// Answer is the generated answer text. Defaults to "".
	Answer *string `json:"answer,omitempty"`

	// Citations supports the answer, in backend order. Defaults to an empty
	// sequence.
	Citations []Citation `json:"citations,omitempty"`

	// QueryLang is the language tag of the query.
	QueryLang *string `json:"query_lang,omitempty"`

	// Lang is the older name of QueryLang still emitted by some backends.
	Lang *string `json:"lang,omitempty"`

	// Error is set by the backend when it failed but answered with 2xx.
	Error *string `json:"error,omitempty"`
}

// GetAnswer returns the answer text or an empty string.
func (r AnswerResponse) GetAnswer() string {
	if r.Answer == nil {
		return ""
	}
	return *r.Answer
}

// GetCitations returns the citation list, never nil.
func (r AnswerResponse) GetCitations() []Citation {
	if r.Citations == nil {
		return []Citation{}
	}
	return r.Citations
}

// GetQueryLang returns query_lang, falling back to lang and then to
// [UnknownLanguage].
func (r AnswerResponse) GetQueryLang() string {
	if r.QueryLang != nil && *r.QueryLang != "" {
		return *r.QueryLang
	}
	if r.Lang != nil && *r.Lang != "" {
		return *r.Lang
	}
	return UnknownLanguage
}
