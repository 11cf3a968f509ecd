// Package locator は解析済みHTMLドキュメントから構造パス(CSSセレクタ)で値を取り出す純粋関数を提供します。
// ソースサイトのレイアウト変更による破損はすべてこのパッケージのパス定義側に閉じ込めます。
package locator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locate はdoc配下でpathに一致したノードのテキストを返します。
// 一致しない場合、docがnilの場合、pathが不正なセレクタの場合は空文字を返し、panicしません。
// 複数ノードに一致した場合はドキュメント順に連結したテキストを返します。
func Locate(doc *goquery.Selection, path string) string {
	if doc == nil || path == "" {
		return ""
	}
	return strings.TrimSpace(doc.Find(path).Text())
}

// LocateAll はdoc配下でpathに一致したノードをドキュメント順に返します。
// 一致しない場合は空スライスを返します。
func LocateAll(doc *goquery.Selection, path string) []*goquery.Selection {
	if doc == nil || path == "" {
		return []*goquery.Selection{}
	}
	found := doc.Find(path)
	out := make([]*goquery.Selection, 0, found.Length())
	for i := range found.Nodes {
		out = append(out, found.Eq(i))
	}
	return out
}

// OwnText は子孫要素のテキストを除いた、ノード自身の直下テキストだけを返します。
// 元のドキュメントは変更しません。
func OwnText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Clone().Children().Remove().End().Text())
}
