package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/niewin/devjobs/internal/models"
	"github.com/niewin/devjobs/internal/utils"
)

const bannerText = `
██████╗ ███████╗██╗   ██╗     ██╗ ██████╗ ██████╗ ███████╗
██╔══██╗██╔════╝██║   ██║     ██║██╔═══██╗██╔══██╗██╔════╝
██║  ██║█████╗  ██║   ██║     ██║██║   ██║██████╔╝███████╗
██║  ██║██╔══╝  ╚██╗ ██╔╝██   ██║██║   ██║██╔══██╗╚════██║
██████╔╝███████╗ ╚████╔╝ ╚█████╔╝╚██████╔╝██████╔╝███████║
╚═════╝ ╚══════╝  ╚═══╝   ╚════╝  ╚═════╝ ╚═════╝ ╚══════╝
 Niewin: Search Dev Jobs
`

const excerptLength = 280

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	steps := float32(len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(string(r)))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// FormatURL formats a URL, optionally as a clickable terminal hyperlink using OSC 8 escape sequence.
// The placeholder text for missing URLs is never linked.
func FormatURL(url string, useHyperlink bool) string {
	if !useHyperlink || url == models.NoApplicationURL {
		return url
	}
	// Using \a (BEL) as the terminator for wider compatibility
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, "Apply")
}

// SearchSummary echoes the terms the user searched for
func SearchSummary(q models.SearchQuery) string {
	return fmt.Sprintf("You searched for %s in %s", q.Search, q.Location)
}

// FormatPosting renders one posting as a terminal card
func FormatPosting(p models.Posting, useHyperlink bool) string {
	published := p.Published
	if rel := utils.RelativePublished(p.Published); rel != "" {
		published = fmt.Sprintf("%s (%s)", p.Published, rel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", pterm.Bold.Sprint(p.Company.Name))
	fmt.Fprintf(&b, "%s\n", pterm.Gray(p.Location))
	fmt.Fprintf(&b, "%s\n\n", pterm.Gray(published))
	if desc := utils.Excerpt(p.Description, excerptLength); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}
	fmt.Fprintf(&b, "How To Apply: %s", FormatURL(p.HowToApply(), useHyperlink))

	return pterm.DefaultBox.
		WithTitle(pterm.LightCyan(p.Title)).
		WithTitleTopLeft().
		Sprint(b.String())
}

// PrintPostings writes the result header and one card per posting to w
func PrintPostings(w io.Writer, total int, postings []models.Posting, useHyperlink bool) {
	fmt.Fprintf(w, "\n%s\n\n", pterm.Bold.Sprintf("Showing: %s jobs", utils.FormatCount(total)))

	if len(postings) == 0 {
		fmt.Fprintln(w, "No matching jobs found.")
		return
	}

	for _, p := range postings {
		fmt.Fprintln(w, FormatPosting(p, useHyperlink))
	}
	fmt.Fprintf(w, "\n%s matching jobs\n", utils.FormatCount(len(postings)))
}
