package known

// Element tags. Each constant's value is the lowercase tag name.
const (
	A          Tag = "a"
	Abbr       Tag = "abbr"
	Address    Tag = "address"
	Area       Tag = "area"
	Article    Tag = "article"
	Aside      Tag = "aside"
	Audio      Tag = "audio"
	B          Tag = "b"
	Base       Tag = "base"
	Bdi        Tag = "bdi"
	Bdo        Tag = "bdo"
	Blockquote Tag = "blockquote"
	Body       Tag = "body"
	Br         Tag = "br"
	Button     Tag = "button"
	Canvas     Tag = "canvas"
	Caption    Tag = "caption"
	Cite       Tag = "cite"
	Code       Tag = "code"
	Col        Tag = "col"
	Colgroup   Tag = "colgroup"
	Data       Tag = "data"
	Datalist   Tag = "datalist"
	Dd         Tag = "dd"
	Del        Tag = "del"
	Details    Tag = "details"
	Dfn        Tag = "dfn"
	Dialog     Tag = "dialog"
	Div        Tag = "div"
	Dl         Tag = "dl"
	Dt         Tag = "dt"
	Em         Tag = "em"
	Embed      Tag = "embed"
	Fieldset   Tag = "fieldset"
	Figcaption Tag = "figcaption"
	Figure     Tag = "figure"
	Footer     Tag = "footer"
	Form       Tag = "form"
	H1         Tag = "h1"
	H2         Tag = "h2"
	H3         Tag = "h3"
	H4         Tag = "h4"
	H5         Tag = "h5"
	H6         Tag = "h6"
	Head       Tag = "head"
	Header     Tag = "header"
	Hgroup     Tag = "hgroup"
	Hr         Tag = "hr"
	HTML       Tag = "html"
	I          Tag = "i"
	Iframe     Tag = "iframe"
	Img        Tag = "img"
	Input      Tag = "input"
	Ins        Tag = "ins"
	Kbd        Tag = "kbd"
	Label      Tag = "label"
	Legend     Tag = "legend"
	Li         Tag = "li"
	Link       Tag = "link"
	Main       Tag = "main"
	Map        Tag = "map"
	Mark       Tag = "mark"
	Menu       Tag = "menu"
	Meta       Tag = "meta"
	Meter      Tag = "meter"
	Nav        Tag = "nav"
	Noscript   Tag = "noscript"
	Object     Tag = "object"
	Ol         Tag = "ol"
	Optgroup   Tag = "optgroup"
	Option     Tag = "option"
	Output     Tag = "output"
	P          Tag = "p"
	Picture    Tag = "picture"
	Pre        Tag = "pre"
	Progress   Tag = "progress"
	Q          Tag = "q"
	Rp         Tag = "rp"
	Rt         Tag = "rt"
	Ruby       Tag = "ruby"
	S          Tag = "s"
	Samp       Tag = "samp"
	Script     Tag = "script"
	Search     Tag = "search"
	Section    Tag = "section"
	Select     Tag = "select"
	Slot       Tag = "slot"
	Small      Tag = "small"
	Source     Tag = "source"
	Span       Tag = "span"
	Strong     Tag = "strong"
	Style      Tag = "style"
	Sub        Tag = "sub"
	Summary    Tag = "summary"
	Sup        Tag = "sup"
	Table      Tag = "table"
	Tbody      Tag = "tbody"
	Td         Tag = "td"
	Template   Tag = "template"
	Textarea   Tag = "textarea"
	Tfoot      Tag = "tfoot"
	Th         Tag = "th"
	Thead      Tag = "thead"
	Time       Tag = "time"
	Title      Tag = "title"
	Tr         Tag = "tr"
	Track      Tag = "track"
	U          Tag = "u"
	Ul         Tag = "ul"
	Var        Tag = "var"
	Video      Tag = "video"
	Wbr        Tag = "wbr"
)

// elements is sorted so lookups can binary search it.
var elements = [...]Tag{
	A, Abbr, Address, Area, Article, Aside, Audio, B, Base, Bdi, Bdo,
	Blockquote, Body, Br, Button, Canvas, Caption, Cite, Code, Col, Colgroup,
	Data, Datalist, Dd, Del, Details, Dfn, Dialog, Div, Dl, Dt, Em, Embed,
	Fieldset, Figcaption, Figure, Footer, Form, H1, H2, H3, H4, H5, H6, Head,
	Header, Hgroup, Hr, HTML, I, Iframe, Img, Input, Ins, Kbd, Label, Legend,
	Li, Link, Main, Map, Mark, Menu, Meta, Meter, Nav, Noscript, Object, Ol,
	Optgroup, Option, Output, P, Picture, Pre, Progress, Q, Rp, Rt, Ruby, S,
	Samp, Script, Search, Section, Select, Slot, Small, Source, Span, Strong,
	Style, Sub, Summary, Sup, Table, Tbody, Td, Template, Textarea, Tfoot, Th,
	Thead, Time, Title, Tr, Track, U, Ul, Var, Video, Wbr,
}

// voidElements are the tags that never have children or a closing tag.
var voidElements = [...]Tag{
	Area, Base, Br, Col, Embed, Hr, Img, Input, Link, Meta, Source, Track, Wbr,
}
