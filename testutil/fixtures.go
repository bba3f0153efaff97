package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleMbox is a two-message GNU-Mailman style mbox archive, with the
// classic ">From " body escaping in the second message.
const SampleMbox = `From alice at example.org Mon Jan  2 10:00:00 2006
Message-Id: <m1@example.org>
From: Alice <alice@example.org>
Date: Mon, 02 Jan 2006 10:00:00 +0000
Subject: kickoff

Hello list,
this is the first message.

From bob at example.org Mon Jan  2 10:05:00 2006
Message-Id: <m2@example.org>
From: Bob <bob@example.org>
Date: Mon, 02 Jan 2006 10:05:00 +0000
In-Reply-To: <m1@example.org>
References: <m1@example.org>
Subject: Re: kickoff

>From my side this looks good.
`

// SampleMboxBroken appends a fragment without a Message-Id, which the
// reader should skip while keeping the parseable messages.
const SampleMboxBroken = SampleMbox + `
From carol at example.org Mon Jan  2 10:10:00 2006
From: Carol <carol@example.org>
Date: Mon, 02 Jan 2006 10:10:00 +0000

No message id on this one.
`

// SampleListserv is a two-message LISTSERV digest separated by ruler
// lines, with a continuation header in the second message.
const SampleListserv = `=========================================================================
Date: Mon, 2 Jan 2006 10:00:00 +0000
From: Alice <alice@example.org>
Subject: kickoff

Hello list,
first LISTSERV message.
=========================================================================
Date: Mon, 2 Jan 2006 10:05:00 +0000
From: Bob
 <bob@example.org>
Subject: Re: kickoff

Replying inline.
`

// SampleCSV holds the canonical export column layout with one thread.
const SampleCSV = `Message-ID,From,Date,In-Reply-To,References,Body
m1,alice@example.org,2006-01-02T10:00:00Z,None,,hello
m2,bob@example.org,2006-01-02T10:05:00Z,m1,m1,hi back
`

// WriteSourceFile drops content into dir under name and returns the full
// path.
func WriteSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
