package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/stats"
)

// Renderer formats check results and rule listings as user-facing text.
// The same output is used for Telegram replies (Markdown mode) and the
// CLI, so it sticks to plain Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. includeFooter controls the trailing
// summary line on analysis output.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// Reply formats a check result: a full analysis when corrections were
// applied, a "perfect grammar" confirmation otherwise.
func (r *Renderer) Reply(res model.CheckResult) string {
	if !res.Changed() {
		return r.perfect(res)
	}
	return r.analysis(res)
}

func (r *Renderer) analysis(res model.CheckResult) string {
	var b strings.Builder

	b.WriteString("🔍 **Grammar Analysis**\n\n")
	fmt.Fprintf(&b, "✗ **Original:** `%s`\n", res.Original)
	fmt.Fprintf(&b, "✅ **Corrected:** `%s`\n\n", res.Corrected)

	b.WriteString("📖 **Corrections Made:**\n")
	for i, corr := range res.Corrections {
		fmt.Fprintf(&b, "\n%d. **%s**\n", i+1, corr.Category)
		fmt.Fprintf(&b, "   💡 %s\n", corr.Explanation)
		for _, example := range corr.Examples {
			fmt.Fprintf(&b, "   %s\n", example)
		}
	}

	if res.Tip != nil && res.Tip.Text != "" {
		fmt.Fprintf(&b, "\n🧑‍🏫 **Tutor Tip:** %s\n", res.Tip.Text)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n🎉 **Perfect!** %d error(s) fixed! 🌈", len(res.Corrections))
	}

	return b.String()
}

func (r *Renderer) perfect(res model.CheckResult) string {
	var b strings.Builder
	b.WriteString("✅ **Perfect Grammar!**\n\n")
	fmt.Fprintf(&b, "`%s`\n\n", res.Original)
	b.WriteString("🌟 Excellent! No grammar errors found! 🎯")
	return b.String()
}

// RulesListing formats the full rule table grouped by category.
func (r *Renderer) RulesListing(rules []model.Rule) string {
	var b strings.Builder
	b.WriteString("📚 **Grammar Rules Collection**\n")

	currentCategory := ""
	for _, rule := range rules {
		if rule.Category != currentCategory {
			currentCategory = rule.Category
			fmt.Fprintf(&b, "\n🔹 **%s**\n", currentCategory)
		}
		fmt.Fprintf(&b, "📖 %s\n", rule.Explanation)
		for _, example := range rule.Examples {
			fmt.Fprintf(&b, "   %s\n", example)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// StatsText formats the aggregate counters for the /stats command.
func (r *Renderer) StatsText(snap stats.Snapshot) string {
	var b strings.Builder
	b.WriteString("📊 **Grammar Statistics**\n\n")
	fmt.Fprintf(&b, "Sentences checked: %d\n", snap.Checks)
	fmt.Fprintf(&b, "Errors corrected:  %d\n", snap.Corrections)

	if len(snap.ByCategory) > 0 {
		b.WriteString("\n**Most common mistakes:**\n")
		for _, name := range snap.TopCategories() {
			fmt.Fprintf(&b, "• %s: %d\n", name, snap.ByCategory[name])
		}
	}

	b.WriteString("\nCounters reset when the bot restarts — nothing is stored. 🚀")
	return b.String()
}

// Welcome returns the /start greeting.
func (r *Renderer) Welcome() string {
	return `🎓 **Smart Grammar Checker Bot** 🤖

I'll help you improve your English grammar instantly! 📚✨

**Features:**
✅ Real-time grammar correction
📝 Detailed explanations
🎯 Example sentences
📊 Grammar statistics

**How to use:**
1. Just send me any English sentence
2. I'll auto-correct and explain mistakes
3. Learn from detailed examples

**Example:**
✗ *I goes to school*
✅ *I go to school*
🐰 **Explanation:** "I" always takes base form verb!

Ready to improve your English? Send me a sentence! 🚀`
}

// Help returns the /help text.
func (r *Renderer) Help() string {
	return `🆘 **Help Guide**

**Commands:**
/start - Start the bot
/help - Show this help message
/rules - View grammar rules
/stats - Grammar statistics

**Simply type** any English sentence and I'll check it automatically!

**Supported Rules:**
• Subject-verb agreement
• Verb tenses
• Auxiliary verbs
• And many more!

**Tip:** Practice regularly to improve your grammar skills! 💪`
}

// About returns the About button text.
func (r *Renderer) About() string {
	return "🤖 Advanced Grammar Checker\nVersion 2.0\nBuilt with Go"
}

// RenderJSON writes a check result as indented JSON to path.
func (r *Renderer) RenderJSON(res model.CheckResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}
