package xosd

// Options configures a window at construction time. Every field maps to one
// of the Osd setters; NewWithOptions applies them in a fixed order and
// fails (tearing the session back down) on the first setter that fails.
// The zero value of each field means "leave the library default alone".
type Options struct {
	// Font is an X logical font description (XLFD) or alias, e.g. "fixed".
	Font string

	// Color is the text colour, named per X11's rgb.txt, e.g. "LawnGreen".
	Color string

	// ShadowColor is the drop-shadow colour.
	ShadowColor string

	// OutlineColor is the text outline colour.
	OutlineColor string

	// Timeout is how long each display stays up, in seconds. Zero means
	// use the library default; negative disables the timeout entirely.
	Timeout int

	// HasTimeout forces Timeout to be applied even when it is zero, since
	// zero is also a meaningful value (immediate expiry).
	HasTimeout bool

	// ShadowOffset is the drop-shadow offset in pixels.
	ShadowOffset int

	// OutlineOffset is the text outline width in pixels.
	OutlineOffset int

	// HorizontalOffset shifts the window from its horizontal anchor, in
	// pixels.
	HorizontalOffset int

	// VerticalOffset shifts the window from its vertical anchor, in
	// pixels.
	VerticalOffset int

	// VerticalAlign places the window vertically. Nil means library
	// default (top).
	VerticalAlign *VerticalAlign

	// HorizontalAlign places the window horizontally. Nil means library
	// default (left).
	HorizontalAlign *HorizontalAlign

	// BarLength fixes the percentage of the display width used by bars
	// and sliders, 0-100. Nil means let the library choose.
	BarLength *int

	// Logger receives a debug record for every native call. If nil, no
	// logging is performed.
	Logger Logger
}

// apply runs the configured setters against a freshly constructed window.
func (o *Options) apply(osd *Osd) error {
	if o.Font != "" {
		if err := osd.SetFont(o.Font); err != nil {
			return err
		}
	}
	if o.Color != "" {
		if err := osd.SetColor(o.Color); err != nil {
			return err
		}
	}
	if o.ShadowColor != "" {
		if err := osd.SetShadowColor(o.ShadowColor); err != nil {
			return err
		}
	}
	if o.OutlineColor != "" {
		if err := osd.SetOutlineColor(o.OutlineColor); err != nil {
			return err
		}
	}
	if o.Timeout != 0 || o.HasTimeout {
		if err := osd.SetTimeout(o.Timeout); err != nil {
			return err
		}
	}
	if o.ShadowOffset != 0 {
		if err := osd.SetShadowOffset(o.ShadowOffset); err != nil {
			return err
		}
	}
	if o.OutlineOffset != 0 {
		if err := osd.SetOutlineOffset(o.OutlineOffset); err != nil {
			return err
		}
	}
	if o.HorizontalOffset != 0 {
		if err := osd.SetHorizontalOffset(o.HorizontalOffset); err != nil {
			return err
		}
	}
	if o.VerticalOffset != 0 {
		if err := osd.SetVerticalOffset(o.VerticalOffset); err != nil {
			return err
		}
	}
	if o.VerticalAlign != nil {
		if err := osd.SetVerticalAlign(*o.VerticalAlign); err != nil {
			return err
		}
	}
	if o.HorizontalAlign != nil {
		if err := osd.SetHorizontalAlign(*o.HorizontalAlign); err != nil {
			return err
		}
	}
	if o.BarLength != nil {
		if err := osd.SetBarLength(*o.BarLength); err != nil {
			return err
		}
	}
	return nil
}
