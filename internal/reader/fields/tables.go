package fields

// Feed selects channel level fields of Atom and RSS documents.
var Feed = []Field{
	Name("title"),
	Name("description"),
	Name("link"),
	Name("atom:link"),
	Map("language", "lang"),
	Name("copyright"),
	Name("id"),
	Name("etag"),
	Name("image"),
	Map("date", "updatedAt"),
	Map("updated", "updatedAt"),
	Map("lastBuildDate", "updatedAt"),
	Map("dc:title", "title"),
	Map("dc:description", "description"),
	Map("dc:source", "source"),
	Map("dc:date", "updatedAt"),
	Map("dc:language", "lang"),
	Map("dc:rights", "copyright"),
	Map("syn:updateBase", "updatedAt"),
}

// Item selects entry level fields of Atom and RSS documents.
var Item = []Field{
	Name("id"),
	Map("guid", "id"),
	Map("link", "url"),
	Name("title"),
	Name("author"),
	Name("description"),
	Name("category"),
	Map("date", "createdAt"),
	Map("published", "createdAt"),
	Map("pubDate", "createdAt"),
	Map("updated", "updatedAt"),
	Map("dc:title", "title"),
	Map("dc:creator", "author"),
	Map("dc:subject", "category"),
	Map("dc:description", "description"),
	Map("dc:source", "source"),
	Map("dc:date", "updatedAt"),
	Map("dc:language", "lang"),
	Name("summary"),
	Name("content"),
	Map("content:encoded", "content"),
	Name("comments"),
	Name("enclosure"),
	Map("enc:enclosure", "enclosure"),
	Map("itunes:author", "author"),
	Map("itunes:category", "category"),
	Map("itunes:summary", "description"),
	Map("media:group", "group"),
}

// Image selects the image bearing fields of an entry.
var Image = []Field{
	Name("image"),
	Name("itunes:image"),
	Name("media:thumbnail"),
	Name("media:content"),
	Name("media:group"),
	Name("enclosure"),
	Map("description", "content"),
	Name("content"),
	Map("content:encoded", "content"),
}
