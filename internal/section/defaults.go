// internal/section/defaults.go
//
// Built-in section types for the landing page.
//
// Each template is the complete starting document for its type: headline
// copy, repeating items, and style knobs.  New fields added here surface
// on existing sites at the next resolve, no migration required — that is
// the whole point of the default merge.
package section

import "github.com/vitrineweb/vitrine/internal/content"

func init() {
	Register("hero", content.Value{
		"title":    "Grow your business with us",
		"subtitle": "Everything your customers need, one page away.",
		"cta_text": "Get in touch",
		"cta_link": "#contact",
		"image":    "",
		"style":    map[string]any{"bg": "#ffffff", "align": "center"},
	})

	Register("features", content.Value{
		"title": "What we offer",
		"items": []any{
			map[string]any{"t": "Fast delivery", "d": "Ship in days, not months.", "icon": "bolt"},
			map[string]any{"t": "Fair pricing", "d": "Pay for what you use.", "icon": "tag"},
			map[string]any{"t": "Real support", "d": "People, not bots.", "icon": "chat"},
		},
		"style": map[string]any{"bg": "#f7f7f7", "columns": float64(3)},
	})

	Register("steps", content.Value{
		"title": "How it works",
		"items": []any{
			map[string]any{"t": "Tell us what you need", "d": ""},
			map[string]any{"t": "Get a proposal", "d": ""},
			map[string]any{"t": "Launch", "d": ""},
		},
		"style": map[string]any{"bg": "#ffffff"},
	})

	Register("faq", content.Value{
		"title": "Frequently asked questions",
		"items": []any{
			map[string]any{"q": "How long does a project take?", "a": "Most launch within two weeks."},
		},
		"style": map[string]any{"bg": "#ffffff"},
	})

	Register("testimonials", content.Value{
		"title": "What our clients say",
		"items": []any{},
		"style": map[string]any{"bg": "#f7f7f7"},
	})

	Register("contact", content.Value{
		"title":    "Talk to us",
		"subtitle": "We answer within one business day.",
		"email":    "",
		"whatsapp": "",
		"style":    map[string]any{"bg": "#ffffff"},
	})
}
