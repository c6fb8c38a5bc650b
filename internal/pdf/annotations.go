package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// annotSubtypeHighlight is the PDF annotation subtype this tool collects.
// Other markup subtypes (Underline, StrikeOut, Squiggly, Text) are skipped.
const annotSubtypeHighlight = "Highlight"

// quadCoords is the number of array entries per quadrilateral in a
// QuadPoints array: 4 vertices of 2 coordinates each.
const quadCoords = 8

// pageRegions holds the highlight geometry found on one page. QuadPoints
// and glyph positions share the same bottom-up user space, so rectangles
// are used as-is with no vertical flip.
type pageRegions struct {
	number     int
	highlights int
	rects      []Rect // one per quad group, annotation order preserved
}

// readHighlightRegions opens the document with pdfcpu and returns, per page
// in ascending order, the bounding rectangles of every highlight annotation.
// Pages without highlights are returned with an empty rect list so callers
// can report how many pages were scanned.
func readHighlightRegions(filePath string) ([]pageRegions, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filePath)
		}
		return nil, fmt.Errorf("%w: cannot access %s: %v", ErrInputNotFound, filePath, err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputFormat, filePath, err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputFormat, filePath, err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to get catalog: %v", ErrInputFormat, filePath, err)
	}

	pagesObj, found := rootDict.Find("Pages")
	if !found {
		return nil, fmt.Errorf("%w: %s: no page tree", ErrInputFormat, filePath)
	}

	var regions []pageRegions
	if err := walkPageTree(ctx, pagesObj, 0, &regions); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputFormat, filePath, err)
	}

	return regions, nil
}

// maxPageTreeDepth bounds the recursion so a cyclic page tree cannot hang us.
const maxPageTreeDepth = 64

// walkPageTree traverses the page tree in document order, appending one
// pageRegions entry per leaf page.
func walkPageTree(ctx *model.Context, obj types.Object, depth int, regions *[]pageRegions) error {
	if depth > maxPageTreeDepth {
		return fmt.Errorf("page tree exceeds maximum depth %d", maxPageTreeDepth)
	}

	nodeDict, err := ctx.DereferenceDict(obj)
	if err != nil {
		return fmt.Errorf("failed to dereference page tree node: %w", err)
	}
	if nodeDict == nil {
		return nil
	}

	nodeType := ""
	if typeObj, found := nodeDict.Find("Type"); found {
		if name, err := ctx.DereferenceName(typeObj, model.V10, nil); err == nil {
			nodeType = string(name)
		}
	}

	_, hasKids := nodeDict.Find("Kids")

	// Leaf page: collect its highlight rectangles.
	if nodeType == "Page" || (nodeType == "" && !hasKids) {
		rects, count := highlightRectsFromPage(ctx, nodeDict)
		*regions = append(*regions, pageRegions{
			number:     len(*regions) + 1,
			highlights: count,
			rects:      rects,
		})
		return nil
	}

	kidsObj, found := nodeDict.Find("Kids")
	if !found {
		return nil
	}
	kids, err := ctx.DereferenceArray(kidsObj)
	if err != nil {
		return fmt.Errorf("failed to dereference Kids array: %w", err)
	}

	for _, kid := range kids {
		if err := walkPageTree(ctx, kid, depth+1, regions); err != nil {
			return err
		}
	}
	return nil
}

// highlightRectsFromPage scans a page's Annots array and returns one
// rectangle per quad group of every highlight annotation, in enumeration
// order, along with the number of highlight annotations seen.
func highlightRectsFromPage(ctx *model.Context, pageDict types.Dict) ([]Rect, int) {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil, 0
	}

	annots, err := ctx.DereferenceArray(annotsObj)
	if err != nil {
		return nil, 0
	}

	var rects []Rect
	count := 0

	for _, annotRef := range annots {
		annotDict, err := ctx.DereferenceDict(annotRef)
		if err != nil || annotDict == nil {
			continue
		}

		subtypeObj, found := annotDict.Find("Subtype")
		if !found {
			continue
		}
		subtype, err := ctx.DereferenceName(subtypeObj, model.V10, nil)
		if err != nil || subtype != annotSubtypeHighlight {
			continue
		}

		count++

		qpObj, found := annotDict.Find("QuadPoints")
		if !found {
			continue
		}
		qpArray, err := ctx.DereferenceArray(qpObj)
		if err != nil {
			continue
		}

		coords := make([]float64, 0, len(qpArray))
		for _, c := range qpArray {
			f, err := ctx.DereferenceNumber(c)
			if err != nil {
				coords = nil
				break
			}
			coords = append(coords, f)
		}
		if coords == nil {
			continue
		}

		rects = append(rects, quadRects(coords)...)
	}

	return rects, count
}

// quadRects chunks a flat QuadPoints coordinate list into groups of 4
// vertices and returns the normalized bounding rectangle of each group.
// A trailing partial group (malformed annotation) is skipped.
func quadRects(coords []float64) []Rect {
	var rects []Rect
	for i := 0; i+quadCoords <= len(coords); i += quadCoords {
		r := Rect{MinX: coords[i], MinY: coords[i+1], MaxX: coords[i], MaxY: coords[i+1]}
		for j := i + 2; j < i+quadCoords; j += 2 {
			x, y := coords[j], coords[j+1]
			if x < r.MinX {
				r.MinX = x
			}
			if x > r.MaxX {
				r.MaxX = x
			}
			if y < r.MinY {
				r.MinY = y
			}
			if y > r.MaxY {
				r.MaxY = y
			}
		}
		rects = append(rects, r)
	}
	return rects
}
