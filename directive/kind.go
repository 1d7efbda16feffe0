package directive

//go:generate go tool go-enum --marshal --file=$GOFILE

// Kind of directive. Values are declared in recognition priority order:
// targeted forms always precede their generic counterparts.
// ENUM(layout, scope, seo_title, seo_desc, seo_keys, container_align, container_width, section_width, hero_width, bg_section, bg_container, overlay_container, overlay, card_bg, btn_bg, bg, margin_section, margin_container, padding_section, padding_container, margin_top, margin_bottom, margin, padding, radius_section, radius_container, radius_img, radius_card, radius_btn, radius, border_section, border_container, border_card, border_btn, border_faq_item, border, card_title_color, card_color, title_color, text_color, btn_color, link_color, link_weight, link_underline, color, heading, min_height, valign, align, faq_mode, faq_icon, image_size, desc_bottom, desc_top, title, lead, cap, cols, cta, btn, img, icon, q, a)
type Kind int

// CarriesText reports whether directive argument is author text which keeps
// its inline hyperlinks.
func (k Kind) CarriesText() bool {
	switch k {
	case KindSeoTitle, KindSeoDesc, KindTitle, KindLead, KindCap,
		KindDescTop, KindDescBottom, KindQ, KindA, KindImg, KindIcon, KindCta, KindBtn:
		return true
	}
	return false
}

// ScopeOnly reports whether directive only makes sense before the first
// section is open.
func (k Kind) ScopeOnly() bool {
	switch k {
	case KindScope, KindSeoTitle, KindSeoDesc, KindSeoKeys:
		return true
	}
	return false
}
