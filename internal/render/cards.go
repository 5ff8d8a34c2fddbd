package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"dconn.dev/folio/internal/models"
)

// Fixed class tokens of the card markup.
const (
	cardClass  = "p-4 shadow rounded-2xl hover:shadow-xl transition"
	imgClass   = "w-full h-48 object-cover rounded-xl"
	titleClass = "font-semibold mt-2"
	tagClass   = "text-sm text-slate-600 mt-1"
	linksClass = "mt-2 flex gap-2"
	linkClass  = "text-amber-600"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func htmlAttr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// buildCard builds the detached element tree for one project:
//
//	<div class="p-4 ...">
//	  <img src="{img}" class="w-full ..."/>
//	  <h3 class="font-semibold mt-2">{title}</h3>
//	  <p class="text-sm ...">{tag}</p>
//	  <div class="mt-2 flex gap-2"><a href="{repo}">Repo</a><a href="{live}">Live</a></div>
//	</div>
//
// Field values go into attributes and text nodes unchanged; html.Render
// escapes them on output.
func buildCard(p models.Project) *html.Node {
	card := element(atom.Div, htmlAttr("class", cardClass))

	card.AppendChild(element(atom.Img, htmlAttr("src", p.Img), htmlAttr("class", imgClass)))

	title := element(atom.H3, htmlAttr("class", titleClass))
	title.AppendChild(textNode(p.Title))
	card.AppendChild(title)

	tag := element(atom.P, htmlAttr("class", tagClass))
	tag.AppendChild(textNode(p.Tag))
	card.AppendChild(tag)

	links := element(atom.Div, htmlAttr("class", linksClass))
	links.AppendChild(link(p.Repo, "Repo"))
	links.AppendChild(link(p.Live, "Live"))
	card.AppendChild(links)

	return card
}

func link(href, label string) *html.Node {
	a := element(atom.A, htmlAttr("href", href), htmlAttr("class", linkClass))
	a.AppendChild(textNode(label))
	return a
}

// buildCards builds one card per project, in order. Nothing is attached to a
// document until every card has been built.
func buildCards(projects []models.Project) []*html.Node {
	cards := make([]*html.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, buildCard(p))
	}
	return cards
}
